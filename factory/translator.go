package factory

import (
	"github.com/ichaly/auja/admin"
	"github.com/samber/lo"
)

// Translator 界面文案翻译
type Translator interface {
	Trans(key string) string
}

// MapTranslator 基于映射表的翻译，缺失时原样返回
type MapTranslator map[string]string

func NewTranslator(c *admin.Config) Translator {
	return MapTranslator(lo.Assign(map[string]string{}, c.Translations))
}

func (my MapTranslator) Trans(key string) string {
	return lo.ValueOr(my, key, key)
}
