package ui

// Main 主界面
type Main struct {
	Title              string    `json:"title"`
	Authenticated      bool      `json:"authenticated"`
	Username           string    `json:"username,omitempty"`
	Buttons            []*Button `json:"buttons,omitempty"`
	Items              []*Item   `json:"items,omitempty"`
	AuthenticationForm *Form     `json:"authentication,omitempty"`
}

func (my *Main) Type() string { return "main" }

func (my *Main) AddButton(b *Button) { my.Buttons = append(my.Buttons, b) }

func (my *Main) AddItem(i *Item) { my.Items = append(my.Items, i) }

func (my *Main) MarshalJSON() ([]byte, error) {
	type body Main
	return wrap(my.Type(), (*body)(my))
}

// Item 主界面的入口项
type Item struct {
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	Target string `json:"target"`
}

func (my *Item) Type() string { return "item" }

func (my *Item) MarshalJSON() ([]byte, error) {
	type body Item
	return wrap(my.Type(), (*body)(my))
}
