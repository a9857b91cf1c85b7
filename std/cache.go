package std

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	bigcache_store "github.com/eko/gocache/store/bigcache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	"github.com/ichaly/auja/log"
	"github.com/redis/go-redis/v9"
)

// DefaultExpire 默认缓存过期时间
const DefaultExpire = 24 * time.Hour

// NewCache 根据app.cache创建缓存，dialect为redis时使用redis，否则使用进程内bigcache
func NewCache(c *Config) (*cache.Cache[any], error) {
	ds := c.Cache
	if ds == nil {
		ds = &DataSource{}
	}
	exp := ds.Expire
	if exp <= 0 {
		exp = DefaultExpire
	}

	if ds.Dialect == "redis" {
		client, err := NewRedis(ds)
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", client.Options().Addr).Dur("expire", exp).Msg("使用redis缓存")
		return cache.New[any](redis_store.NewRedis(client, store.WithExpiration(exp))), nil
	}

	big, err := bigcache.New(context.Background(), bigcache.DefaultConfig(exp))
	if err != nil {
		return nil, fmt.Errorf("创建bigcache失败: %w", err)
	}
	log.Info().Dur("expire", exp).Msg("使用内存缓存")
	return cache.New[any](bigcache_store.NewBigcache(big, store.WithExpiration(exp))), nil
}

// NewRedis 创建redis客户端，uri优先
func NewRedis(ds *DataSource) (*redis.Client, error) {
	if ds.Uri != "" {
		opts, err := redis.ParseURL(ds.Uri)
		if err != nil {
			return nil, fmt.Errorf("解析redis地址失败: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	db := 0
	if ds.Name != "" {
		n, err := strconv.Atoi(ds.Name)
		if err != nil {
			return nil, fmt.Errorf("redis库编号无效: %s", ds.Name)
		}
		db = n
	}
	return redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(ds.Host, strconv.Itoa(ds.Port)),
		Username: ds.Username,
		Password: ds.Password,
		DB:       db,
	}), nil
}
