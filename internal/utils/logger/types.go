package logger

import "gopkg.in/natefinch/lumberjack.v2"

// LoggingConfig is the logging section of dpdkintel.yaml. Output goes to
// stdout unless Enabled is set together with Path.
// LoggingConfig 是 dpdkintel.yaml 的 logging 段。仅当 Enabled 且设置了 Path 时才写入文件，否则输出到 stdout。
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
	Path    string `yaml:"path"`

	// Rotation, see lumberjack.Logger.
	// 轮转参数，见 lumberjack.Logger。
	MaxSize    int  `yaml:"max_size"` // MB
	MaxBackups int  `yaml:"max_backups"`
	MaxAge     int  `yaml:"max_age"` // days
	Compress   bool `yaml:"compress"`
}

func (c LoggingConfig) toFile() bool {
	return c.Enabled && c.Path != ""
}

func (c LoggingConfig) rotator() *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}
