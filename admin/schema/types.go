package schema

import (
	"strings"

	"github.com/samber/lo"
)

// nativeTypes 数据库原生类型到类型标签的映射，覆盖mysql、postgres和sqlite
var nativeTypes = map[string]string{
	"int":                         Integer,
	"integer":                     Integer,
	"int4":                        Integer,
	"mediumint":                   Integer,
	"serial":                      Integer,
	"smallint":                    SmallInt,
	"int2":                        SmallInt,
	"smallserial":                 SmallInt,
	"year":                        SmallInt,
	"bigint":                      BigInt,
	"int8":                        BigInt,
	"bigserial":                   BigInt,
	"varchar":                     String,
	"char":                        String,
	"character":                   String,
	"character varying":           String,
	"bpchar":                      String,
	"nvarchar":                    String,
	"enum":                        String,
	"set":                         SimpleArray,
	"text":                        Text,
	"tinytext":                    Text,
	"mediumtext":                  Text,
	"longtext":                    Text,
	"clob":                        Text,
	"json":                        JsonArray,
	"jsonb":                       JsonArray,
	"hstore":                      Object,
	"array":                       Array,
	"blob":                        Blob,
	"tinyblob":                    Blob,
	"mediumblob":                  Blob,
	"longblob":                    Blob,
	"binary":                      Blob,
	"varbinary":                   Blob,
	"bytea":                       Blob,
	"decimal":                     Decimal,
	"numeric":                     Decimal,
	"money":                       Decimal,
	"float":                       Float,
	"float4":                      Float,
	"float8":                      Float,
	"double":                      Float,
	"double precision":            Float,
	"real":                        Float,
	"bool":                        Boolean,
	"boolean":                     Boolean,
	"bit":                         Boolean,
	"tinyint":                     Boolean,
	"date":                        Date,
	"datetime":                    DateTime,
	"timestamp":                   DateTime,
	"timestamp without time zone": DateTime,
	"timestamptz":                 DateTimeTz,
	"timestamp with time zone":    DateTimeTz,
	"time":                        Time,
	"timetz":                      Time,
	"time without time zone":      Time,
	"time with time zone":         Time,
	"uuid":                        Guid,
	"uniqueidentifier":            Guid,
}

// TypeMapper 把原生类型归一化为类型标签
type TypeMapper struct {
	types map[string]string
}

// NewTypeMapper 创建类型映射，custom中的映射优先
func NewTypeMapper(custom map[string]string) *TypeMapper {
	custom = lo.MapKeys(custom, func(_ string, k string) string {
		return strings.ToLower(k)
	})
	return &TypeMapper{types: lo.Assign(nativeTypes, custom)}
}

// Normalize 归一化原生类型，无法识别的类型按String处理
func (my *TypeMapper) Normalize(native string) string {
	name := strings.ToLower(strings.TrimSpace(native))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(name, " zerofill"), " unsigned"))

	// postgres数组类型
	if strings.HasSuffix(name, "[]") || (strings.HasPrefix(name, "_") && len(name) > 1) {
		return lo.ValueOr(my.types, name, Array)
	}
	return lo.ValueOr(my.types, name, String)
}
