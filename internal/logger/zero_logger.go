package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger is the zerolog-backed Logger used by the service.
type ZeroLogger struct {
	logger zerolog.Logger
	writer io.Writer
	fields Fields
}

// NewZeroLogger returns a configured instance of ZeroLogger. The
// default fields are attached to every event.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	l := &ZeroLogger{writer: writer, fields: defaultFields}
	l.configure(level)
	return l
}

func (l *ZeroLogger) configure(level Level) {
	var zLevel zerolog.Level
	switch level {
	case LevelInfo:
		zLevel = zerolog.InfoLevel
	case LevelError:
		zLevel = zerolog.ErrorLevel
	case LevelFatal:
		zLevel = zerolog.FatalLevel
	case LevelOff:
		zLevel = zerolog.Disabled
	case LevelDebug:
		zLevel = zerolog.DebugLevel
	default:
		zLevel = zerolog.InfoLevel
	}

	props := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		props[k] = v
	}

	l.logger = zerolog.New(l.writer).With().Fields(props).Timestamp().Logger().Level(zLevel)
}

// Info logs at info level
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.logger.Info().Fields(properties).Msg(message)
}

// Error logs the error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.logger.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal writes the log to output and stops the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.logger.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug logs at debug level
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.logger.Debug().Fields(properties).Msg(message)
}

// SetLevel reconfigures the minimum level.
func (l *ZeroLogger) SetLevel(level Level) {
	l.configure(level)
}
