package admin

import (
	"fmt"
)

// Config 返回模型合并override后的配置副本
func (my *Configurator) Config(model *Model, override *ModelConfig) (*ModelConfig, error) {
	if !my.configured {
		return nil, ErrNotConfigured
	}
	if model == nil {
		return nil, fmt.Errorf("%w: nil", ErrModelNotConfigured)
	}
	c, ok := my.configs[model.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotConfigured, model.Name)
	}
	return c.Merge(override), nil
}

func (my *Configurator) DisplayField(model *Model, override *ModelConfig) (string, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return "", err
	}
	return c.DisplayField, nil
}

func (my *Configurator) Icon(model *Model, override *ModelConfig) (string, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return "", err
	}
	return c.Icon, nil
}

func (my *Configurator) VisibleFields(model *Model, override *ModelConfig) ([]string, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return nil, err
	}
	return c.VisibleFields, nil
}

func (my *Configurator) ShouldIncludeInMain(model *Model, override *ModelConfig) (bool, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return false, err
	}
	return c.IsIncludedInMain(), nil
}

func (my *Configurator) IsSearchable(model *Model, override *ModelConfig) (bool, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return false, err
	}
	return c.IsSearchable(), nil
}

func (my *Configurator) TableName(model *Model, override *ModelConfig) (string, error) {
	c, err := my.Config(model, override)
	if err != nil {
		return "", err
	}
	return c.Table, nil
}
