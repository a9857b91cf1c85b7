package internal

import (
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotate 日志轮转配置
type Rotate struct {
	// Filename 日志文件路径
	Filename string
	// MaxSize 单个日志文件最大尺寸，单位是MB
	MaxSize int
	// MaxAge 文件最大保存天数
	MaxAge int
	// MaxBackups 最大保留文件数
	MaxBackups int
	// Compress 是否压缩旧文件
	Compress bool
	// Level 最低输出级别
	Level zerolog.Level
}

// NewRotateLogger 创建写入lumberjack的zerolog实例
func NewRotateLogger(r *Rotate) zerolog.Logger {
	w := &lumberjack.Logger{
		Filename:   r.Filename,
		MaxSize:    r.MaxSize,
		MaxAge:     r.MaxAge,
		MaxBackups: r.MaxBackups,
		LocalTime:  true,
		Compress:   r.Compress,
	}
	return zerolog.New(w).Level(r.Level).With().Timestamp().Logger()
}

// DefaultRotate 默认轮转配置
func DefaultRotate() *Rotate {
	return &Rotate{
		Filename:   "logs/auja.log",
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
		Level:      zerolog.InfoLevel,
	}
}
