package schema

import (
	"context"
	"errors"
)

// ErrColumnNotFound 表中不存在指定的列
var ErrColumnNotFound = errors.New("列不存在")

// Provider 数据库结构查询接口
type Provider interface {
	// HasTable 判断表是否存在
	HasTable(ctx context.Context, table string) (bool, error)
	// ColumnListing 按表定义顺序返回全部列名
	ColumnListing(ctx context.Context, table string) ([]string, error)
	// ColumnType 返回列的类型标签，取值见 Integer 等常量
	ColumnType(ctx context.Context, table, column string) (string, error)
}

// 列类型标签
const (
	Integer     = "integer"
	SmallInt    = "smallint"
	BigInt      = "bigint"
	String      = "string"
	Text        = "text"
	Array       = "array"
	SimpleArray = "simple_array"
	JsonArray   = "json_array"
	Object      = "object"
	Blob        = "blob"
	Decimal     = "decimal"
	Float       = "float"
	Boolean     = "boolean"
	Date        = "date"
	DateTime    = "datetime"
	DateTimeTz  = "datetimetz"
	Time        = "time"
	Guid        = "guid"
)
