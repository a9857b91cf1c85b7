package schema

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/ichaly/auja/log"
	"github.com/ichaly/auja/utl"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheKey 表结构快照的缓存键
	DefaultCacheKey = "auja.table_info"
	// DefaultCacheTTL 表结构快照的缓存时间
	DefaultCacheTTL = 24 * time.Hour
)

// CacheOption 缓存选项
type CacheOption func(*CachedProvider)

// WithCacheKey 设置缓存键
func WithCacheKey(key string) CacheOption {
	return func(my *CachedProvider) {
		if key != "" {
			my.key = key
		}
	}
}

// WithCacheTTL 设置缓存时间
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(my *CachedProvider) {
		if ttl > 0 {
			my.ttl = ttl
		}
	}
}

// CachedProvider 把表结构快照缓存到固定键下，结果在ttl内最终一致
type CachedProvider struct {
	loader Loader
	cache  cache.CacheInterface[any]
	key    string
	ttl    time.Duration
	group  singleflight.Group

	mu      sync.RWMutex
	local   *Snapshot
	expires time.Time
	gen     uint64
}

func NewCachedProvider(loader Loader, c cache.CacheInterface[any], opts ...CacheOption) *CachedProvider {
	my := &CachedProvider{loader: loader, cache: c, key: DefaultCacheKey, ttl: DefaultCacheTTL}
	for _, o := range opts {
		o(my)
	}
	return my
}

func (my *CachedProvider) HasTable(ctx context.Context, table string) (bool, error) {
	s, err := my.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return s.HasTable(ctx, table)
}

func (my *CachedProvider) ColumnListing(ctx context.Context, table string) ([]string, error) {
	s, err := my.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.ColumnListing(ctx, table)
}

func (my *CachedProvider) ColumnType(ctx context.Context, table, column string) (string, error) {
	s, err := my.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return s.ColumnType(ctx, table, column)
}

// Snapshot 依次从本地、缓存、数据库获取快照，本地副本与缓存按同一加载时间过期
func (my *CachedProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	my.mu.RLock()
	local, expires, gen := my.local, my.expires, my.gen
	my.mu.RUnlock()
	if local != nil && time.Now().Before(expires) {
		return local, nil
	}

	val, err, _ := my.group.Do(my.key, func() (interface{}, error) {
		if s, ok := my.fromCache(ctx); ok {
			return s, nil
		}
		s, err := my.loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		s = &Snapshot{Tables: s.Tables, LoadedAt: time.Now()}
		if my.stale(gen) {
			return s, nil
		}
		data, err := utl.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("序列化表结构快照失败: %w", err)
		}
		if err := my.cache.Set(ctx, my.key, data, store.WithExpiration(my.ttl)); err != nil {
			log.Warn().Err(err).Str("key", my.key).Msg("写入表结构缓存失败")
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	s := val.(*Snapshot)
	my.mu.Lock()
	// 加载期间发生过Invalidate时不保留结果
	if my.gen == gen {
		my.local, my.expires = s, s.LoadedAt.Add(my.ttl)
	}
	my.mu.Unlock()
	return s, nil
}

func (my *CachedProvider) stale(gen uint64) bool {
	my.mu.RLock()
	defer my.mu.RUnlock()
	return my.gen != gen
}

func (my *CachedProvider) fromCache(ctx context.Context) (*Snapshot, bool) {
	val, err := my.cache.Get(ctx, my.key)
	if err != nil || val == nil {
		return nil, false
	}
	var data []byte
	switch v := val.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil, false
	}
	s := &Snapshot{}
	if err := utl.Unmarshal(data, s); err != nil {
		log.Warn().Err(err).Str("key", my.key).Msg("表结构缓存已损坏")
		return nil, false
	}
	if !time.Now().Before(s.LoadedAt.Add(my.ttl)) {
		log.Debug().Str("key", my.key).Time("loaded", s.LoadedAt).Msg("表结构缓存已过期")
		return nil, false
	}
	log.Debug().Str("key", my.key).Msg("命中表结构缓存")
	return s, true
}

// Invalidate 清除快照，下次访问时重新加载
func (my *CachedProvider) Invalidate(ctx context.Context) error {
	my.mu.Lock()
	my.local = nil
	my.gen++
	my.mu.Unlock()
	my.group.Forget(my.key)
	if err := my.cache.Delete(ctx, my.key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("清除表结构缓存失败: %w", err)
	}
	return nil
}
