package utl

import (
	"strings"
)

// JoinString 连接多个字符串
func JoinString(elem ...string) string {
	if len(elem) == 0 {
		return ""
	}

	totalLen := 0
	for _, e := range elem {
		totalLen += len(e)
	}

	b := strings.Builder{}
	b.Grow(totalLen)
	for _, e := range elem {
		b.WriteString(e)
	}
	return b.String()
}

// TrimAnySuffix 去掉第一个匹配的后缀
func TrimAnySuffix(s string, list ...string) (string, bool) {
	for _, p := range list {
		if p != "" && strings.HasSuffix(s, p) {
			return strings.TrimSuffix(s, p), true
		}
	}
	return s, false
}
