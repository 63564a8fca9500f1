package core

// Logger is any leveled logging service.
// Implementations may inspect args for known domain objects (e.g. the
// acting user) and attach them as structured context.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
