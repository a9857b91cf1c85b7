package std

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ichaly/auja/log"
	"github.com/ichaly/auja/utl"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Konfig 配置管理器，包装了koanf.Koanf
type Konfig struct {
	k       *koanf.Koanf
	options *konfigOptions
}

// KonfigOption 定义配置选项函数类型
type KonfigOption func(*konfigOptions)

type konfigOptions struct {
	configType string
	envPrefix  string
	filePath   string
	delim      string
}

// WithFilePath 设置配置文件路径
func WithFilePath(filePath string) KonfigOption {
	return func(options *konfigOptions) {
		if filePath != "" {
			options.filePath = filePath
			options.configType = strings.TrimPrefix(filepath.Ext(filePath), ".")
		}
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) KonfigOption {
	return func(options *konfigOptions) {
		options.envPrefix = prefix
	}
}

// NewKonfig 创建配置管理器，依次加载.env、配置文件、profile文件和环境变量
func NewKonfig(opts ...KonfigOption) (*Konfig, error) {
	options := &konfigOptions{
		configType: "yaml",
		envPrefix:  "APP",
		delim:      ".",
	}
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.New(options.delim)
	k.Set("mode", "dev")
	k.Set("profiles.active", "")

	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("加载环境变量文件: %w", err)
	}

	if options.filePath != "" {
		if err := loadConfigFile(k, options.filePath, options); err != nil {
			return nil, err
		}
		ext := filepath.Ext(options.filePath)
		name := strings.TrimSuffix(filepath.Base(options.filePath), ext)
		if err := mergeProfiles(k, filepath.Dir(options.filePath), name, options); err != nil {
			return nil, fmt.Errorf("合并环境配置失败: %w", err)
		}
	}

	prefix := options.envPrefix + "_"
	envProvider := env.Provider(prefix, options.delim, func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", options.delim, -1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("加载环境变量失败: %w", err)
	}

	return &Konfig{k: k, options: options}, nil
}

// loadEnvFile 加载项目根目录下的.env文件(可选)
func loadEnvFile() error {
	envFile := filepath.Join(utl.Root(), ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("加载.env文件失败: %w", err)
	}
	return nil
}

func parserFor(configType string) (koanf.Parser, error) {
	switch configType {
	case "yaml", "yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("不支持的配置文件类型: %s", configType)
	}
}

// loadConfigFile 加载配置文件
func loadConfigFile(k *koanf.Koanf, filePath string, options *konfigOptions) error {
	parser, err := parserFor(options.configType)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(filePath), parser); err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}
	log.Info().Str("file", filePath).Msg("配置文件已加载")
	return nil
}

// mergeProfiles 合并profile配置文件，如config-dev.yml
func mergeProfiles(k *koanf.Koanf, path, name string, options *konfigOptions) error {
	parser, err := parserFor(options.configType)
	if err != nil {
		return err
	}
	for _, profile := range getActiveProfiles(k) {
		profileFile := filepath.Join(path, utl.JoinString(name, "-", profile, ".", options.configType))
		if _, err := os.Stat(profileFile); os.IsNotExist(err) {
			log.Debug().Str("profile", profile).Str("file", profileFile).Msg("配置文件不存在，跳过")
			continue
		}
		if err := k.Load(file.Provider(profileFile), parser); err != nil {
			return fmt.Errorf("合并profile配置文件失败: %w", err)
		}
		log.Info().Str("profile", profile).Str("file", profileFile).Msg("配置文件已合并")
	}
	return nil
}

// getActiveProfiles 获取激活的profiles，mode总是最后一个
func getActiveProfiles(k *koanf.Koanf) []string {
	var profiles []string
	for _, p := range strings.Split(k.String("profiles.active"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	if mode := k.String("mode"); mode != "" {
		profiles = append(profiles, mode)
	}
	return profiles
}

// Get 获取配置项
func (my *Konfig) Get(path string) interface{} {
	return my.k.Get(path)
}

// Set 设置配置项
func (my *Konfig) Set(path string, value interface{}) {
	_ = my.k.Set(path, value)
}

// IsSet 判断配置项是否存在
func (my *Konfig) IsSet(path string) bool {
	return my.k.Exists(path)
}

func (my *Konfig) GetString(path string) string {
	return my.k.String(path)
}

func (my *Konfig) GetBool(path string) bool {
	return my.k.Bool(path)
}

func (my *Konfig) GetInt(path string) int {
	return my.k.Int(path)
}

func (my *Konfig) GetDuration(path string) time.Duration {
	return my.k.Duration(path)
}

func (my *Konfig) GetStringSlice(path string) []string {
	return my.k.Strings(path)
}

func (my *Konfig) GetStringMapString(path string) map[string]string {
	return my.k.StringMap(path)
}

// Unmarshal 将配置解析到结构体
func (my *Konfig) Unmarshal(val interface{}) error {
	return my.UnmarshalKey("", val)
}

// UnmarshalKey 将配置键解析到结构体
func (my *Konfig) UnmarshalKey(path string, val interface{}) error {
	err := my.k.UnmarshalWithConf(path, val, koanf.UnmarshalConf{Tag: "mapstructure"})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("配置解析失败")
	}
	return err
}

// SetDefault 设置单个配置项的默认值
func (my *Konfig) SetDefault(path string, value interface{}) {
	if !my.IsSet(path) {
		my.Set(path, value)
		log.Debug().Str("path", path).Interface("value", value).Msg("设置默认配置项")
	}
}

// SetDefaults 从 map 批量加载默认值，已存在的配置项保持不变
func (my *Konfig) SetDefaults(defaults map[string]interface{}) error {
	fresh := koanf.New(my.options.delim)
	if err := fresh.Load(confmap.Provider(defaults, my.options.delim), nil); err != nil {
		log.Error().Err(err).Msg("批量加载默认值失败")
		return err
	}
	for _, key := range fresh.Keys() {
		my.SetDefault(key, fresh.Get(key))
	}
	return nil
}
