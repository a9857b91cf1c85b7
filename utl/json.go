package utl

import (
	jsoniter "github.com/json-iterator/go"
)

// 使用项目标准的json序列化
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal 解析JSON数据
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal 序列化为JSON
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent 序列化为格式化的JSON
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
