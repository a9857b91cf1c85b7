package ioc

import (
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/ichaly/auja/std"
)

// 数据库与缓存模块
func init() {
	Add(Module("database",
		Provide(
			std.NewDatabase,
			Annotate(
				std.NewCache,
				As(new(cache.CacheInterface[any])),
			),
		),
	))
}
