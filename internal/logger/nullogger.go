package logger

// NullLogger discards everything. It is the logger handed to services
// under test so assertions never depend on log output.
type NullLogger struct{}

var _ Logger = (*NullLogger)(nil)

// NewNullLogger returns a discarding Logger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Info(_ string, _ map[string]interface{})  {}
func (l *NullLogger) Error(_ error, _ map[string]interface{})  {}
func (l *NullLogger) Fatal(_ error, _ map[string]interface{})  {}
func (l *NullLogger) Debug(_ string, _ map[string]interface{}) {}
func (l *NullLogger) SetLevel(_ Level)                         {}
