package router

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"gorm.io/gorm/schema"
)

// ModelRef 模型引用，可由名称、实例或控制器类型得到模型名
type ModelRef interface {
	ModelName() string
}

type byName string

// ByName 按名称引用，clubs、club与Club都得到Club
func ByName(name string) ModelRef {
	return byName(name)
}

func (my byName) ModelName() string {
	return normalize(string(my))
}

type byInstance struct {
	v any
}

// ByInstance 按实例引用，实现schema.Tabler时取表名，否则取类型名
func ByInstance(v any) ModelRef {
	return byInstance{v: v}
}

func (my byInstance) ModelName() string {
	if t, ok := my.v.(schema.Tabler); ok {
		return normalize(t.TableName())
	}
	return normalize(typeName(my.v))
}

type byController struct {
	v any
}

// ByController 按控制器类型引用，去掉Controller或Handler后缀
func ByController(v any) ModelRef {
	return byController{v: v}
}

func (my byController) ModelName() string {
	name := typeName(my.v)
	for _, suffix := range []string{"Controller", "Handler"} {
		if n, ok := strings.CutSuffix(name, suffix); ok && n != "" {
			name = n
			break
		}
	}
	return normalize(name)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

func normalize(name string) string {
	return strcase.ToCamel(inflection.Singular(strcase.ToSnake(name)))
}
