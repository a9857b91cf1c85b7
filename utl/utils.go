package utl

import (
	"path/filepath"
	"runtime"
)

// Root 返回项目的根目录路径
func Root() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(filepath.Dir(filename))
}

// Must 保证函数返回的错误为 nil，否则 panic
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
