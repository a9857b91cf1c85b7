package admin

import (
	"github.com/ichaly/auja/admin/schema"
	"github.com/samber/lo"
)

// Resolver 为模型推断默认配置并合并覆盖配置
type Resolver struct {
	model    *Model
	override *ModelConfig
}

func NewResolver(model *Model, override *ModelConfig) *Resolver {
	return &Resolver{model: model, override: override}
}

func (my *Resolver) Resolve() *ModelConfig {
	c := &ModelConfig{
		Table:         my.model.Table,
		DisplayField:  my.displayField(),
		VisibleFields: my.model.ColumnNames(),
		IncludeInMain: lo.ToPtr(true),
		Searchable:    lo.ToPtr(true),
	}
	return c.Merge(my.override)
}

// displayField 取最后一个名为name或title的字符串列，否则取第一列
func (my *Resolver) displayField() string {
	columns := my.model.Columns()
	display := ""
	for _, c := range columns {
		if c.Type == schema.String && (c.Name == "name" || c.Name == "title") {
			display = c.Name
		}
	}
	if display == "" && len(columns) > 0 {
		display = columns[0].Name
	}
	return display
}
