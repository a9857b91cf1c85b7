package std

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/log"
	"go.uber.org/fx"
)

var (
	// Version 当前版本号
	Version = "V0.0.0"
	// GitCommit Git提交哈希
	GitCommit = "Unknown"
	// BuildTime 构建时间
	BuildTime = ""

	// 路径规范化正则表达式
	reg = regexp.MustCompile(`/+`)
)

// Plugin 挂载到指定基础路径下的路由插件
type Plugin interface {
	// Base 插件基础路径
	Base() string
	// Init 注册路由
	Init(fiber.Router)
}

// PluginGroup 插件组
type PluginGroup struct {
	fx.In
	Plugins []Plugin `group:"plugin"`
}

// Mount 把插件挂载到app，相同基础路径共享同一个路由组
func Mount(a *fiber.App, plugins ...Plugin) {
	routers := map[string]fiber.Router{"/": a}
	for _, p := range plugins {
		// 将连续的多个斜杠替换为单个斜杠且移除右侧的斜杠
		base := fmt.Sprintf("%s/", strings.TrimRight(reg.ReplaceAllString(p.Base(), "/"), "/"))
		r, ok := routers[base]
		if !ok {
			r = a.Group(strings.TrimRight(base, "/"))
			routers[base] = r
		}
		p.Init(r)
	}
}

// Bootstrap 挂载插件并在生命周期内启停服务
func Bootstrap(l fx.Lifecycle, c *Config, a *fiber.App, g PluginGroup) {
	if BuildTime == "" {
		BuildTime = time.Now().Format("2006-01-02 15:04:05")
	}
	Mount(a, g.Plugins...)

	l.Append(fx.StartStopHook(func(ctx context.Context) {
		go func() {
			if err := a.Listen(c.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("app", c.Name).Msg("启动失败")
			}
		}()
	}, func(ctx context.Context) error {
		err := a.ShutdownWithContext(ctx)
		log.Info().Str("app", c.Name).Msg("已关闭")
		return err
	}))

	log.Info().Str("version", Version).Str("commit", GitCommit).Str("build", BuildTime).Msg("当前版本")
}
