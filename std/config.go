package std

import (
	"os"

	"github.com/ichaly/auja/log"
	"github.com/ichaly/auja/std/internal"
)

type DataSource = internal.DataSource

// Config 表示标准配置
type Config struct {
	internal.AppConfig `mapstructure:"app"`
	Mode               string `mapstructure:"mode"`
}

func NewConfig(k *Konfig) (*Config, error) {
	k.SetDefault("app.name", "auja")
	k.SetDefault("app.host", "0.0.0.0")
	k.SetDefault("app.port", "8080")

	c := &Config{}
	if err := k.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}

// IsDebug 判断是否为开发模式
func (my *Config) IsDebug() bool {
	return my.Mode == "development" || my.Mode == "dev"
}

// Addr 服务监听地址
func (my *Config) Addr() string {
	return my.Host + ":" + my.Port
}

// NewLogger 根据配置创建日志记录器并设为默认
func NewLogger(c *Config) *log.Logger {
	level := log.InfoLevel
	if c.IsDebug() {
		level = log.DebugLevel
	}
	if c.Log != nil && c.Log.Level != "" {
		level = log.ParseLevel(c.Log.Level)
	}

	var l *log.Logger
	if c.Log != nil && c.Log.Filename != "" {
		l = log.NewRotateLogger(log.WithFilename(c.Log.Filename), log.WithRotateLevel(level))
	} else {
		l = log.NewLogger(log.WithConsole(os.Stderr), log.WithLevel(level))
	}
	log.SetDefault(l)
	return l
}
