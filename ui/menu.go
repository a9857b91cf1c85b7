package ui

import "github.com/ichaly/auja/utl"

// Menu 菜单
type Menu struct {
	Items []Component `json:"menu"`
}

func (my *Menu) Type() string { return "menu" }

func (my *Menu) AddItem(item Component) *Menu {
	my.Items = append(my.Items, item)
	return my
}

func (my *Menu) MarshalJSON() ([]byte, error) {
	type body Menu
	return wrap(my.Type(), (*body)(my))
}

// LinkMenuItem 链接菜单项
type LinkMenuItem struct {
	Text   string `json:"text"`
	Target string `json:"target"`
	Icon   string `json:"icon,omitempty"`
	Order  int    `json:"order"`
}

func (my *LinkMenuItem) Type() string { return "link" }

func (my *LinkMenuItem) MarshalJSON() ([]byte, error) {
	type body LinkMenuItem
	return wrap(my.Type(), (*body)(my))
}

// SpacerMenuItem 分隔标题
type SpacerMenuItem struct {
	Text string `json:"text"`
}

func (my *SpacerMenuItem) Type() string { return "spacer" }

func (my *SpacerMenuItem) MarshalJSON() ([]byte, error) {
	type body SpacerMenuItem
	return wrap(my.Type(), (*body)(my))
}

// ResourceMenuItem 由客户端按Target加载条目的菜单项
type ResourceMenuItem struct {
	Target     string
	Properties []Component
}

func (my *ResourceMenuItem) Type() string { return "resource" }

func (my *ResourceMenuItem) AddProperty(p Component) {
	my.Properties = append(my.Properties, p)
}

func (my *ResourceMenuItem) MarshalJSON() ([]byte, error) {
	properties := make(map[string]any, len(my.Properties))
	for _, p := range my.Properties {
		properties[p.Type()] = p
	}
	return wrap(my.Type(), map[string]any{"target": my.Target, "properties": properties})
}

// Searchable 可搜索属性，Target中的%s由客户端替换为关键字
type Searchable struct {
	Target string `json:"target"`
}

func (my *Searchable) Type() string { return "searchable" }

// Resource 资源条目列表，NextPageURL非空时客户端继续加载
type Resource struct {
	Items       []*LinkMenuItem
	NextPageURL string
}

func (my *Resource) Type() string { return "items" }

func (my *Resource) AddItem(item *LinkMenuItem) { my.Items = append(my.Items, item) }

func (my *Resource) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": my.Type(), "items": append([]*LinkMenuItem{}, my.Items...)}
	if my.NextPageURL != "" {
		out["paging"] = map[string]string{"next": my.NextPageURL}
	}
	return utl.Marshal(out)
}
