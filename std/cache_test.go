package std

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheMemory(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache(&Config{})
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "auja.table_info", []byte(`{"tables":{}}`)))
	val, err := c.Get(ctx, "auja.table_info")
	require.NoError(t, err)
	assert.Equal(t, `{"tables":{}}`, fmt.Sprintf("%s", val))

	require.NoError(t, c.Delete(ctx, "auja.table_info"))
	_, err = c.Get(ctx, "auja.table_info")
	assert.Error(t, err)
}

func TestNewCacheRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := &Config{}
	cfg.Cache = &DataSource{Dialect: "redis", Uri: "redis://" + mr.Addr()}
	rc, err := NewCache(cfg)
	require.NoError(t, err)

	require.NoError(t, rc.Set(ctx, "auja.table_info", []byte("snapshot"), store.WithExpiration(0)))
	assert.True(t, mr.Exists("auja.table_info"))

	val, err := rc.Get(ctx, "auja.table_info")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", fmt.Sprintf("%s", val))
}

func TestNewRedisWithHost(t *testing.T) {
	client, err := NewRedis(&DataSource{Host: "127.0.0.1", Port: 6380, Name: "2"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)

	_, err = NewRedis(&DataSource{Name: "x"})
	assert.Error(t, err)
}

func TestNewDatabaseSqlite(t *testing.T) {
	cfg := &Config{Mode: "dev"}
	cfg.Database = &DataSource{Dialect: "sqlite", Uri: "file:std_test?mode=memory&cache=shared"}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
	require.NoError(t, db.Exec("CREATE TABLE clubs (id integer primary key, name varchar(255))").Error)
	assert.True(t, db.Migrator().HasTable("clubs"))

	_, err = NewDatabase(&Config{})
	assert.Error(t, err)
}
