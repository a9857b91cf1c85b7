package admin

import (
	"time"

	"github.com/huandu/go-clone"
	"github.com/ichaly/auja/std"
	"github.com/samber/lo"
)

// ModelConfig 模型的界面配置，零值字段表示未设置
type ModelConfig struct {
	Table         string   `mapstructure:"table" json:"table,omitempty"`
	DisplayField  string   `mapstructure:"display-field" json:"display_field,omitempty"`
	Icon          string   `mapstructure:"icon" json:"icon,omitempty"`
	VisibleFields []string `mapstructure:"visible-fields" json:"visible_fields,omitempty"`
	IncludeInMain *bool    `mapstructure:"include-in-main" json:"include_in_main,omitempty"`
	Searchable    *bool    `mapstructure:"searchable" json:"searchable,omitempty"`
}

// ConfigFactory 按模型名提供覆盖配置，返回nil表示使用默认配置
type ConfigFactory func(name string) *ModelConfig

// Static 返回固定覆盖配置的工厂
func Static(c *ModelConfig) ConfigFactory {
	return func(string) *ModelConfig { return c }
}

// Merge 返回合并后的副本，override中已设置的字段优先
func (my *ModelConfig) Merge(override *ModelConfig) *ModelConfig {
	out := clone.Slowly(my).(*ModelConfig)
	if override == nil {
		return out
	}
	if override.Table != "" {
		out.Table = override.Table
	}
	if override.DisplayField != "" {
		out.DisplayField = override.DisplayField
	}
	if override.Icon != "" {
		out.Icon = override.Icon
	}
	if len(override.VisibleFields) > 0 {
		out.VisibleFields = append([]string(nil), override.VisibleFields...)
	}
	if override.IncludeInMain != nil {
		out.IncludeInMain = lo.ToPtr(*override.IncludeInMain)
	}
	if override.Searchable != nil {
		out.Searchable = lo.ToPtr(*override.Searchable)
	}
	return out
}

// IsIncludedInMain 是否出现在主界面，默认true
func (my *ModelConfig) IsIncludedInMain() bool {
	return lo.FromPtrOr(my.IncludeInMain, true)
}

// IsSearchable 是否可搜索，默认true
func (my *ModelConfig) IsSearchable() bool {
	return lo.FromPtrOr(my.Searchable, true)
}

// Config 管理后台配置，对应配置文件中的admin节点
type Config struct {
	Title         string                  `mapstructure:"title"`
	Prefix        string                  `mapstructure:"prefix"`
	Locale        string                  `mapstructure:"locale"`
	Models        []string                `mapstructure:"models"`
	Overrides     map[string]*ModelConfig `mapstructure:"overrides"`
	HiddenFields  []string                `mapstructure:"hidden-fields"`
	Translations  map[string]string       `mapstructure:"translations"`
	PageSize      int                     `mapstructure:"page-size"`
	Authenticated bool                    `mapstructure:"authenticated"`
	Username      string                  `mapstructure:"username"`
	Schema        SchemaConfig            `mapstructure:"schema"`
}

type SchemaConfig struct {
	Cache       bool              `mapstructure:"cache"`
	CacheKey    string            `mapstructure:"cache-key"`
	CacheTTL    time.Duration     `mapstructure:"cache-ttl"`
	TypeMapping map[string]string `mapstructure:"type-mapping"`
}

func NewConfig(k *std.Konfig) (*Config, error) {
	if err := k.SetDefaults(map[string]interface{}{
		"admin.title":         "Admin",
		"admin.prefix":        "/admin",
		"admin.locale":        "en",
		"admin.page-size":     25,
		"admin.authenticated": true,
		"admin.hidden-fields": []string{"password", "remember_token"},
		"admin.schema.cache":  true,
	}); err != nil {
		return nil, err
	}

	c := &Config{}
	if err := k.UnmarshalKey("admin", c); err != nil {
		return nil, err
	}
	return c, nil
}

// Options 把配置转换为Configurator选项
func (my *Config) Options() []Option {
	return []Option{WithOverrides(my.Overrides)}
}
