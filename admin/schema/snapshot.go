package schema

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ichaly/auja/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Column 快照中的列
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Snapshot 某一时刻全部表结构的快照，列保持表定义顺序
type Snapshot struct {
	Tables   map[string][]Column `json:"tables"`
	LoadedAt time.Time           `json:"loaded_at"`
}

func (my *Snapshot) HasTable(_ context.Context, table string) (bool, error) {
	_, ok := my.Tables[table]
	return ok, nil
}

func (my *Snapshot) ColumnListing(_ context.Context, table string) ([]string, error) {
	return lo.Map(my.Tables[table], func(c Column, _ int) string { return c.Name }), nil
}

func (my *Snapshot) ColumnType(_ context.Context, table, column string) (string, error) {
	c, ok := lo.Find(my.Tables[table], func(c Column) bool { return c.Name == column })
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrColumnNotFound, table, column)
	}
	return c.Type, nil
}

// Loader 一次性加载全部表结构
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// NewLoader 根据数据库方言选择加载器，mysql和postgres走information_schema单次查询
func NewLoader(db *gorm.DB, mapper *TypeMapper) Loader {
	if mapper == nil {
		mapper = NewTypeMapper(nil)
	}
	switch strings.ToLower(db.Dialector.Name()) {
	case "mysql":
		return &dialectLoader{db: db, mapper: mapper, query: mysqlColumnsQuery}
	case "postgres":
		return &dialectLoader{db: db, mapper: mapper, query: postgresColumnsQuery}
	default:
		return &migratorLoader{db: db, mapper: mapper}
	}
}

const mysqlColumnsQuery = `
SELECT c.table_name AS table_name, c.column_name AS column_name, c.column_type AS data_type
FROM information_schema.columns c
JOIN information_schema.tables t ON t.table_schema = c.table_schema AND t.table_name = c.table_name
WHERE c.table_schema = DATABASE() AND t.table_type = 'BASE TABLE'
ORDER BY c.table_name, c.ordinal_position`

const postgresColumnsQuery = `
SELECT c.table_name AS table_name, c.column_name AS column_name,
       CASE WHEN c.data_type IN ('ARRAY', 'USER-DEFINED') THEN c.udt_name ELSE c.data_type END AS data_type
FROM information_schema.columns c
JOIN information_schema.tables t ON t.table_schema = c.table_schema AND t.table_name = c.table_name
WHERE c.table_schema = current_schema() AND t.table_type = 'BASE TABLE'
ORDER BY c.table_name, c.ordinal_position`

type columnInfo struct {
	TableName  string `gorm:"column:table_name"`
	ColumnName string `gorm:"column:column_name"`
	DataType   string `gorm:"column:data_type"`
}

// dialectLoader 单条SQL读取全部列
type dialectLoader struct {
	db     *gorm.DB
	mapper *TypeMapper
	query  string
}

func (my *dialectLoader) Load(ctx context.Context) (*Snapshot, error) {
	var rows []columnInfo
	if err := my.db.WithContext(ctx).Raw(my.query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("执行表结构查询失败: %w", err)
	}
	snapshot := &Snapshot{Tables: make(map[string][]Column)}
	for _, r := range rows {
		snapshot.Tables[r.TableName] = append(snapshot.Tables[r.TableName], Column{
			Name: r.ColumnName, Type: my.mapper.Normalize(r.DataType),
		})
	}
	log.Debug().Int("tables", len(snapshot.Tables)).Int("columns", len(rows)).Msg("表结构快照已加载")
	return snapshot, nil
}

// migratorLoader 逐表通过Migrator读取，用于sqlite等其他方言
type migratorLoader struct {
	db     *gorm.DB
	mapper *TypeMapper
}

func (my *migratorLoader) Load(ctx context.Context) (*Snapshot, error) {
	live := NewGormProvider(my.db, my.mapper)
	tables, err := my.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("读取表列表失败: %w", err)
	}
	snapshot := &Snapshot{Tables: make(map[string][]Column, len(tables))}
	for _, table := range tables {
		columns, err := live.columns(ctx, table)
		if err != nil {
			return nil, err
		}
		snapshot.Tables[table] = columns
	}
	log.Debug().Int("tables", len(snapshot.Tables)).Msg("表结构快照已加载")
	return snapshot, nil
}
