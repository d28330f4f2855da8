// Package logger defines the logging facade used across the module, so
// callers can plug any structured logging backend.
package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off entirely.
	DebugLevel Level = iota // DebugLevel is used for debugging information.
	InfoLevel               // InfoLevel is used for informational messages.
	WarnLevel               // WarnLevel is used for warning messages.
	ErrorLevel              // ErrorLevel is used for error messages.
	FatalLevel              // FatalLevel is used for fatal messages that cause the program to exit.
)

type Logger interface {
	// Returns a logger based off the root logger and decorates it with the given context.
	WithField(key string, value any) Logger  // WithField returns a logger with the given key-value pair.
	WithFields(fields map[string]any) Logger // WithFields returns a logger with the given fields.
	WithError(err error) Logger              // WithError returns a logger with the given error.

	// Default log functions
	Debug(args ...any) // Debug logs the message with the debug level.
	Info(args ...any)  // Info logs the message with the info level.
	Warn(args ...any)  // Warn logs the message with the warning level.
	Error(args ...any) // Error logs the message with the error level.
	Fatal(args ...any) // Fatal logs the message and then exits the program.

	// Log functions with format
	Debugf(format string, args ...any) // Debugf formats and logs the message with the given format and arguments.
	Infof(format string, args ...any)  // Infof formats and logs the message with the given format and arguments.
	Warnf(format string, args ...any)  // Warnf formats and logs the message with the given format and arguments.
	Errorf(format string, args ...any) // Errorf formats and logs the message with the given format and arguments.
	Fatalf(format string, args ...any) // Fatalf formats and logs the message with the given format and arguments.

	// Log level functions
	SetLevel(level Level) // SetLevel sets the logging level for the logger.
	GetLevel() Level      // GetLevel returns the logging level for the logger.
}

// Nop returns a logger that discards all output.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) WithField(string, any) Logger     { return nop{} }
func (nop) WithFields(map[string]any) Logger { return nop{} }
func (nop) WithError(error) Logger           { return nop{} }
func (nop) Debug(...any)                     {}
func (nop) Info(...any)                      {}
func (nop) Warn(...any)                      {}
func (nop) Error(...any)                     {}
func (nop) Fatal(...any)                     {}
func (nop) Debugf(string, ...any)            {}
func (nop) Infof(string, ...any)             {}
func (nop) Warnf(string, ...any)             {}
func (nop) Errorf(string, ...any)            {}
func (nop) Fatalf(string, ...any)            {}
func (nop) SetLevel(Level)                   {}
func (nop) GetLevel() Level                  { return Disabled }
