package log

import (
	"io"

	"github.com/ichaly/auja/log/internal"
	"github.com/rs/zerolog"
)

// LoggerOption 日志选项
type LoggerOption func(zerolog.Logger) zerolog.Logger

// RotateOption 日志轮转选项
type RotateOption func(*internal.Rotate)

// WithOutput 设置日志输出目标
func WithOutput(out io.Writer) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.Output(out)
	}
}

// WithConsole 以控制台格式输出到目标
func WithConsole(out io.Writer) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.Output(newConsole(out))
	}
}

// WithLevel 设置日志级别
func WithLevel(level Level) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.Level(level)
	}
}

// WithField 附加固定字段
func WithField(key, value string) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.With().Str(key, value).Logger()
	}
}

// WithFilename 设置日志文件名
func WithFilename(filename string) RotateOption {
	return func(r *internal.Rotate) {
		r.Filename = filename
	}
}

// WithMaxAge 设置日志最大保存时间（天）
func WithMaxAge(maxAge int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxAge = maxAge
	}
}

// WithMaxSize 设置单个日志文件最大尺寸（MB）
func WithMaxSize(maxSize int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxSize = maxSize
	}
}

// WithMaxBackups 设置最大备份文件数
func WithMaxBackups(maxBackups int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxBackups = maxBackups
	}
}

// WithRotateLevel 设置轮转日志的级别
func WithRotateLevel(level Level) RotateOption {
	return func(r *internal.Rotate) {
		r.Level = level
	}
}

// UseCompress 是否压缩旧日志文件
func UseCompress(compress bool) RotateOption {
	return func(r *internal.Rotate) {
		r.Compress = compress
	}
}

// NewRotateLogger 创建按大小轮转的文件日志记录器
func NewRotateLogger(ops ...RotateOption) *Logger {
	r := internal.DefaultRotate()
	for _, o := range ops {
		o(r)
	}
	return &Logger{l: internal.NewRotateLogger(r)}
}
