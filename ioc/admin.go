package ioc

import (
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/factory"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/std"
	"github.com/ichaly/auja/web"
)

// 管理后台模块
func init() {
	Add(Module("admin",
		Provide(
			admin.NewProvider,
			admin.Setup,
			router.New,
			factory.NewTranslator,
			factory.NewResourceItemFactory,
			factory.NewResourceItemsFactory,
			factory.NewMenuFactory,
			factory.NewFormItemFactory,
			factory.NewPageFactory,
			factory.NewMainFactory,
			factory.NewAuthenticationFormFactory,
			Annotate(
				web.NewHandler,
				As(new(std.Plugin)),
				ResultTags(`group:"plugin"`),
			),
		),
	))
}
