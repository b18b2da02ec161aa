// file: radixmap/logger/zerolog.go
package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var _ ILogger = (*zlogger)(nil)
var _ LoggerEntry = (*zentry)(nil)

// NewZerologLogger builds an ILogger backed by zerolog. When filePath is
// non-empty, output is written to a lumberjack-rotated file instead of
// stderr. Otherwise output is zerolog's colored console writer whenever
// pretty is set or stderr is a terminal, and plain JSON otherwise — pretty
// is how a dev-mode run gets readable logs even when stderr has been
// redirected to a file or pipe.
func NewZerologLogger(serviceName, level, filePath string, pretty bool) ILogger {
	var out io.Writer = os.Stderr
	if filePath != "" {
		out = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	} else if pretty || isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	l := zerolog.New(out).With().Timestamp().Str("service", serviceName).Logger()
	l = l.Level(parseZerologLevel(level))

	return &zlogger{log: l}
}

func parseZerologLevel(level string) zerolog.Level {
	switch normalizeLevel(level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type zlogger struct {
	log zerolog.Logger
}

func (l *zlogger) Debug(msg string, args ...any) { l.log.Debug().Msgf(msg, args...) }
func (l *zlogger) Info(msg string, args ...any)  { l.log.Info().Msgf(msg, args...) }
func (l *zlogger) Warn(msg string, args ...any)  { l.log.Warn().Msgf(msg, args...) }
func (l *zlogger) Error(msg string, args ...any) { l.log.Error().Msgf(msg, args...) }

func (l *zlogger) WithContext(contextID string) ILogger {
	return &zlogger{log: l.log.With().Str("cid", contextID).Logger()}
}

func (l *zlogger) With(key string, value any) LoggerEntry {
	return &zentry{log: l.log.With().Interface(key, value).Logger()}
}

func (l *zlogger) SetLevel(level string) { l.log = l.log.Level(parseZerologLevel(level)) }

func (l *zlogger) Clone() ILogger {
	cloned := l.log.With().Logger()
	return &zlogger{log: cloned}
}

type zentry struct {
	log zerolog.Logger
}

func (e *zentry) With(key string, value any) LoggerEntry {
	return &zentry{log: e.log.With().Interface(key, value).Logger()}
}

func (e *zentry) Debug(msg string, args ...any) { e.log.Debug().Msgf(msg, args...) }
func (e *zentry) Info(msg string, args ...any)  { e.log.Info().Msgf(msg, args...) }
func (e *zentry) Warn(msg string, args ...any)  { e.log.Warn().Msgf(msg, args...) }
func (e *zentry) Error(msg string, args ...any) { e.log.Error().Msgf(msg, args...) }

func (e *zentry) Clone() LoggerEntry {
	return &zentry{log: e.log.With().Logger()}
}
