package schema

import (
	"context"
	"fmt"

	"github.com/ichaly/auja/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormProvider 通过gorm Migrator实时查询表结构
type GormProvider struct {
	db     *gorm.DB
	mapper *TypeMapper
}

func NewGormProvider(db *gorm.DB, mapper *TypeMapper) *GormProvider {
	if mapper == nil {
		mapper = NewTypeMapper(nil)
	}
	return &GormProvider{db: db, mapper: mapper}
}

func (my *GormProvider) HasTable(ctx context.Context, table string) (bool, error) {
	return my.db.WithContext(ctx).Migrator().HasTable(table), nil
}

func (my *GormProvider) ColumnListing(ctx context.Context, table string) ([]string, error) {
	columns, err := my.columns(ctx, table)
	if err != nil {
		return nil, err
	}
	return lo.Map(columns, func(c Column, _ int) string { return c.Name }), nil
}

func (my *GormProvider) ColumnType(ctx context.Context, table, column string) (string, error) {
	columns, err := my.columns(ctx, table)
	if err != nil {
		return "", err
	}
	c, ok := lo.Find(columns, func(c Column) bool { return c.Name == column })
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrColumnNotFound, table, column)
	}
	return c.Type, nil
}

func (my *GormProvider) columns(ctx context.Context, table string) ([]Column, error) {
	types, err := my.db.WithContext(ctx).Migrator().ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("读取表%s的列失败: %w", table, err)
	}
	return lo.Map(types, func(ct gorm.ColumnType, _ int) Column {
		c := Column{Name: ct.Name(), Type: my.mapper.Normalize(ct.DatabaseTypeName())}
		log.Debug().Str("table", table).Str("column", c.Name).Str("native", ct.DatabaseTypeName()).Str("type", c.Type).Msg("读取列类型")
		return c
	}), nil
}
