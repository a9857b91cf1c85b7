package admin

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration 配置数据有误，如模型列表为空或表不存在
	ErrConfiguration = errors.New("配置错误")
	// ErrUsage 调用方式有误，如未配置就查询
	ErrUsage = errors.New("使用错误")
)

var (
	ErrNoModels           = fmt.Errorf("%w: 模型列表为空", ErrConfiguration)
	ErrMissingTable       = fmt.Errorf("%w: 表不存在", ErrConfiguration)
	ErrNotConfigured      = fmt.Errorf("%w: 尚未执行Configure", ErrUsage)
	ErrModelNotFound      = fmt.Errorf("%w: 模型不存在", ErrUsage)
	ErrModelNotConfigured = fmt.Errorf("%w: 模型未配置", ErrUsage)
)
