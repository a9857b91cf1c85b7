package ioc

import (
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/log"
	"github.com/ichaly/auja/std"
)

// 配置模块
func init() {
	Add(Module("config",
		Provide(
			// filePath由fx.Supply提供
			Annotate(
				std.WithFilePath,
				ResultTags(`group:"konfigOptions"`),
			),
			Annotate(
				std.NewKonfig,
				ParamTags(`group:"konfigOptions"`),
			),
			std.NewConfig,
			std.NewLogger,
			admin.NewConfig,
		),
		Invoke(func(*log.Logger) {}),
	))
}
