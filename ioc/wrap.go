package ioc

import "go.uber.org/fx"

// 对 fx 的轻量封装，模块注册只依赖这里的函数

type Option = fx.Option
type Annotation = fx.Annotation

// Module 模块封装
func Module(name string, opts ...Option) Option { return fx.Module(name, opts...) }

// Provide 构造器注册
func Provide(constructors ...any) Option { return fx.Provide(constructors...) }

// Invoke 触发调用
func Invoke(funcs ...any) Option { return fx.Invoke(funcs...) }

// Annotate 注解封装
func Annotate(target any, anns ...Annotation) any { return fx.Annotate(target, anns...) }

// As 结果转换为接口类型
func As(i any) Annotation { return fx.As(i) }

// ResultTags 标注结果 Tags
func ResultTags(tags ...string) Annotation { return fx.ResultTags(tags...) }

// ParamTags 标注参数 Tags
func ParamTags(tags ...string) Annotation { return fx.ParamTags(tags...) }
