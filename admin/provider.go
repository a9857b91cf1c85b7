package admin

import (
	"context"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/ichaly/auja/admin/schema"
	"gorm.io/gorm"
)

// NewProvider 按schema配置创建表结构查询，开启缓存时一次加载全部表结构并写入缓存
func NewProvider(c *Config, db *gorm.DB, store cache.CacheInterface[any]) schema.Provider {
	mapper := schema.NewTypeMapper(c.Schema.TypeMapping)
	if !c.Schema.Cache || store == nil {
		return schema.NewGormProvider(db, mapper)
	}
	var opts []schema.CacheOption
	if c.Schema.CacheKey != "" {
		opts = append(opts, schema.WithCacheKey(c.Schema.CacheKey))
	}
	if c.Schema.CacheTTL > 0 {
		opts = append(opts, schema.WithCacheTTL(c.Schema.CacheTTL))
	}
	return schema.NewCachedProvider(schema.NewLoader(db, mapper), store, opts...)
}

// Setup 创建Configurator并按配置的模型列表完成Configure
func Setup(c *Config, p schema.Provider) (*Configurator, error) {
	my := NewConfigurator(p, c.Options()...)
	if err := my.Configure(context.Background(), c.Models); err != nil {
		return nil, err
	}
	return my, nil
}
