package admin

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/ichaly/auja/utl"
	"github.com/jinzhu/inflection"
	"github.com/samber/lo"
)

// Column 数据表的一列
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Model 数据模型，名称为PascalCase，列按表定义顺序排列
type Model struct {
	Name    string
	Table   string
	columns []*Column
	index   map[string]int
}

// NewModel 创建模型，同名列后者覆盖前者
func NewModel(name, table string, columns ...*Column) *Model {
	my := &Model{Name: name, Table: table, index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if i, ok := my.index[c.Name]; ok {
			my.columns[i] = c
			continue
		}
		my.index[c.Name] = len(my.columns)
		my.columns = append(my.columns, c)
	}
	return my
}

// Columns 按顺序返回全部列
func (my *Model) Columns() []*Column {
	return append([]*Column(nil), my.columns...)
}

// Column 按名称查找列
func (my *Model) Column(name string) (*Column, bool) {
	i, ok := my.index[name]
	if !ok {
		return nil, false
	}
	return my.columns[i], true
}

// ColumnNames 按顺序返回全部列名
func (my *Model) ColumnNames() []string {
	return lo.Map(my.columns, func(c *Column, _ int) string { return c.Name })
}

func (my *Model) MarshalJSON() ([]byte, error) {
	return utl.Marshal(struct {
		Name    string    `json:"name"`
		Table   string    `json:"table"`
		Columns []*Column `json:"columns"`
	}{my.Name, my.Table, my.columns})
}

// TableName 模型名转表名，如BlogPost转为blog_posts
func TableName(model string) string {
	return inflection.Plural(strcase.ToSnake(model))
}

// ForeignModel 从外键列名推断模型名，如country_id推断为Country
func ForeignModel(column string) (string, bool) {
	stem, ok := utl.TrimAnySuffix(column, "_id")
	if !ok || stem == "" {
		return "", false
	}
	return strcase.ToCamel(stem), true
}

// PivotTable 多对多中间表名，两个模型名按字母序(忽略大小写)以下划线连接，如club_team
func PivotTable(a, b string) string {
	x, y := strcase.ToSnake(a), strcase.ToSnake(b)
	if strings.ToLower(x) > strings.ToLower(y) {
		x, y = y, x
	}
	return utl.JoinString(x, "_", y)
}
