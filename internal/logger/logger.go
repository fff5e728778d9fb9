package logger

import (
	"strings"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings. Console is for terminals, json for log shippers.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

// Config selects the level and encoding of the process logger.
type Config struct {
	Level  string
	Format string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger. The first call builds it from cfg; later
// calls return the same instance and ignore cfg.
func Get(cfg Config) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(normalizeLevel(cfg.Level), normalizeFormat(cfg.Format))
	})
	return globalLogger
}

// normalizeLevel accepts config spellings like "INFO" or " warning ".
func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WarnLevel
	}
	return level
}

func normalizeFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), JSONFormat) {
		return JSONFormat
	}
	return ConsoleFormat
}
