package ui

// 表单项类型
const (
	TextItem     = "text"
	TextAreaItem = "textarea"
	IntegerItem  = "integer"
	NumberItem   = "number"
	CheckboxItem = "checkbox"
	DateItem     = "date"
	DateTimeItem = "datetime"
	TimeItem     = "time"
	PasswordItem = "password"
	SubmitItem   = "submit"
)

// Page 页面，由多个组件组成
type Page struct {
	Components []Component
}

func (my *Page) Type() string { return "page" }

func (my *Page) AddComponent(c Component) { my.Components = append(my.Components, c) }

func (my *Page) MarshalJSON() ([]byte, error) {
	return wrap(my.Type(), append([]Component{}, my.Components...))
}

// PageHeader 页面标题
type PageHeader struct {
	Text    string    `json:"text"`
	Buttons []*Button `json:"buttons,omitempty"`
}

func (my *PageHeader) Type() string { return "header" }

func (my *PageHeader) AddButton(b *Button) { my.Buttons = append(my.Buttons, b) }

func (my *PageHeader) MarshalJSON() ([]byte, error) {
	type body PageHeader
	return wrap(my.Type(), (*body)(my))
}

// Form 表单
type Form struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Items  []*FormItem `json:"items"`
}

func (my *Form) Type() string { return "form" }

func (my *Form) AddItem(item *FormItem) { my.Items = append(my.Items, item) }

func (my *Form) MarshalJSON() ([]byte, error) {
	type body Form
	return wrap(my.Type(), (*body)(my))
}

// FormItem 表单项，Kind为TextItem等常量
type FormItem struct {
	Kind  string `json:"-"`
	Name  string `json:"name,omitempty"`
	Label string `json:"label,omitempty"`
	Value any    `json:"value,omitempty"`
	Text  string `json:"text,omitempty"`
}

func NewFormItem(kind string) *FormItem {
	return &FormItem{Kind: kind}
}

func (my *FormItem) Type() string { return my.Kind }

func (my *FormItem) MarshalJSON() ([]byte, error) {
	type body FormItem
	return wrap(my.Type(), (*body)(my))
}
