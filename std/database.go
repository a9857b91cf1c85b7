package std

import (
	"fmt"
	"time"

	"github.com/ichaly/auja/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase 按数据源方言打开数据库连接
func NewDatabase(c *Config) (*gorm.DB, error) {
	if c.Database == nil {
		return nil, fmt.Errorf("未配置数据源: app.database")
	}
	level := logger.Warn
	if c.IsDebug() {
		level = logger.Info
	}
	db, err := gorm.Open(buildDialect(c.Database), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetMaxOpenConns(90)
	sqlDb.SetConnMaxLifetime(5 * time.Minute)

	log.Info().Str("dialect", db.Dialector.Name()).Str("name", c.Database.Name).Msg("数据库已连接")
	return db, nil
}

func buildDialect(ds *DataSource) gorm.Dialector {
	args := []interface{}{ds.Username, ds.Password, ds.Host, ds.Port, ds.Name}
	switch ds.Dialect {
	case "mysql":
		if ds.Uri != "" {
			return mysql.Open(ds.Uri)
		}
		return mysql.Open(fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", args...,
		))
	case "sqlite", "sqlite3":
		return sqlite.Open(ds.Uri)
	default:
		if ds.Uri != "" {
			return postgres.Open(ds.Uri)
		}
		return postgres.Open(fmt.Sprintf(
			"user=%s password=%s host=%s port=%d dbname=%s sslmode=disable", args...,
		))
	}
}
