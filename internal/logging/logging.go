package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New builds the process logger. format "json" writes one JSON object per
// line, anything else writes human-readable console output.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if !strings.EqualFold(format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// GORM adapts the logger for gorm's SQL tracing. SQL statements are only
// traced when the logger is at debug level.
func GORM(l zerolog.Logger) gormlogger.Interface {
	lvl := gormlogger.Warn
	switch l.GetLevel() {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		lvl = gormlogger.Info
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		lvl = gormlogger.Error
	case zerolog.Disabled:
		lvl = gormlogger.Silent
	}
	sub := l.With().Str("component", "gorm").Logger()
	return gormlogger.New(&sub, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
