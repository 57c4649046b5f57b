package logging

// NullLogger discards every log message. Useful as a default when
// no logger is supplied.
type NullLogger struct{}

// NewNullLogger creates a logger that discards all output.
func NewNullLogger() *NullLogger { return &NullLogger{} }

// Info discards the message.
func (*NullLogger) Info(string, ...Field) {}

// Warn discards the message.
func (*NullLogger) Warn(string, ...Field) {}

// Error discards the message.
func (*NullLogger) Error(string, ...Field) {}

// Debug discards the message.
func (*NullLogger) Debug(string, ...Field) {}

// Close is a no-op.
func (*NullLogger) Close() error { return nil }
