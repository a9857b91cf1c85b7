package internal

import "time"

type AppConfig struct {
	Name     string      `mapstructure:"name"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
	Root     string      `mapstructure:"root"`
	Log      *LogConfig  `mapstructure:"log"`
	Cache    *DataSource `mapstructure:"cache"`
	Database *DataSource `mapstructure:"database"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Filename string `mapstructure:"filename"`
}

type DataSource struct {
	Uri      string        `mapstructure:"uri"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Name     string        `mapstructure:"name"`
	Dialect  string        `mapstructure:"dialect"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Expire   time.Duration `mapstructure:"expire"`
}
