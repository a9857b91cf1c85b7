// Package ui 定义前端渲染器消费的界面描述，序列化格式为 {"type": t, t: body}
package ui

import (
	"github.com/ichaly/auja/utl"
)

// Component 带类型标记的界面描述
type Component interface {
	Type() string
}

const (
	IconPlus = "ion-plus"
	IconEdit = "ion-edit"
)

func wrap(t string, body any) ([]byte, error) {
	return utl.Marshal(map[string]any{"type": t, t: body})
}

// Button 按钮
type Button struct {
	Text                string `json:"text"`
	Target              string `json:"target"`
	Method              string `json:"method,omitempty"`
	ConfirmationMessage string `json:"confirmation_message,omitempty"`
}

func (my *Button) Type() string { return "button" }

func (my *Button) MarshalJSON() ([]byte, error) {
	type body Button
	return wrap(my.Type(), (*body)(my))
}
