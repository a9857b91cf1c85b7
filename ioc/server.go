package ioc

import "github.com/ichaly/auja/std"

// 服务模块
func init() {
	Add(Module("server",
		Provide(std.NewFiber),
		Invoke(std.Bootstrap),
	))
}
