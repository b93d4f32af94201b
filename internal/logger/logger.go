// Package logger defines the structured logging contract shared by the
// API and its domain packages. The concrete implementations are
// ZeroLogger for the running service and NullLogger for tests.
package logger

// Fields are default key/value pairs attached to every event a logger
// emits, e.g. the service name.
type Fields map[string]interface{}

// Logger is the logging surface the domain packages depend on. The
// properties map carries per-event context and is merged over the
// logger's default fields.
type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
}

// Level is the minimum severity a logger emits.
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelDebug:
		return "DEBUG"
	case LevelOff:
		return "OFF"
	default:
		return ""
	}
}
