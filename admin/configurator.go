package admin

import (
	"context"
	"fmt"

	"github.com/ichaly/auja/admin/schema"
	"github.com/ichaly/auja/log"
)

// Option Configurator选项
type Option func(*Configurator)

// WithOverride 注册单个模型的覆盖配置工厂
func WithOverride(name string, factory ConfigFactory) Option {
	return func(my *Configurator) {
		my.factories[name] = factory
	}
}

// WithOverrides 注册一组固定覆盖配置
func WithOverrides(overrides map[string]*ModelConfig) Option {
	return func(my *Configurator) {
		for name, c := range overrides {
			if c != nil {
				my.factories[name] = Static(c)
			}
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(l *log.Logger) Option {
	return func(my *Configurator) {
		my.logger = l
	}
}

// Configurator 根据表结构构建模型、推断关系并解析配置，单个实例不可并发Configure
type Configurator struct {
	provider  schema.Provider
	factories map[string]ConfigFactory
	logger    *log.Logger

	configured bool
	models     []*Model
	index      map[string]*Model
	configs    map[string]*ModelConfig
	relations  map[string][]*Relation
}

func NewConfigurator(p schema.Provider, opts ...Option) *Configurator {
	my := &Configurator{
		provider:  p,
		factories: make(map[string]ConfigFactory),
		logger:    log.Default().Named("configurator"),
	}
	for _, o := range opts {
		o(my)
	}
	return my
}

// Configure 构建模型及其关系，失败时保持未配置状态
func (my *Configurator) Configure(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return ErrNoModels
	}

	models := make([]*Model, 0, len(names))
	index := make(map[string]*Model, len(names))
	configs := make(map[string]*ModelConfig, len(names))
	for _, name := range names {
		if _, ok := index[name]; ok {
			my.logger.Warn().Str("model", name).Msg("模型重复，忽略")
			continue
		}
		override := my.override(name)
		model, err := my.buildModel(ctx, name, override)
		if err != nil {
			return err
		}
		models = append(models, model)
		index[name] = model
		configs[name] = NewResolver(model, override).Resolve()
	}

	relations, err := my.buildRelations(ctx, models, index)
	if err != nil {
		return err
	}

	my.models, my.index, my.configs, my.relations = models, index, configs, relations
	my.configured = true
	my.logger.Info().Int("models", len(models)).Msg("模型配置完成")
	return nil
}

func (my *Configurator) override(name string) *ModelConfig {
	factory, ok := my.factories[name]
	if !ok || factory == nil {
		return nil
	}
	return factory(name)
}

func (my *Configurator) buildModel(ctx context.Context, name string, override *ModelConfig) (*Model, error) {
	table := TableName(name)
	if override != nil && override.Table != "" {
		table = override.Table
	}

	ok, err := my.provider.HasTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询表%s失败: %w", ErrConfiguration, table, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: 模型%s对应的表%s", ErrMissingTable, name, table)
	}

	names, err := my.provider.ColumnListing(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取表%s的列失败: %w", ErrConfiguration, table, err)
	}
	columns := make([]*Column, 0, len(names))
	for _, column := range names {
		typ, err := my.provider.ColumnType(ctx, table, column)
		if err != nil {
			return nil, fmt.Errorf("%w: 读取列%s.%s类型失败: %w", ErrConfiguration, table, column, err)
		}
		my.logger.Debug().Str("model", name).Str("column", column).Str("type", typ).Msg("添加列")
		columns = append(columns, &Column{Name: column, Type: typ})
	}
	return NewModel(name, table, columns...), nil
}

// Models 按配置顺序返回全部模型
func (my *Configurator) Models() ([]*Model, error) {
	if !my.configured {
		return nil, ErrNotConfigured
	}
	return append([]*Model(nil), my.models...), nil
}

// Model 按名称查找模型
func (my *Configurator) Model(name string) (*Model, error) {
	if !my.configured {
		return nil, ErrNotConfigured
	}
	m, ok := my.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return m, nil
}
