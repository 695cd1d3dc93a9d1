package libevents

// Logger receives the emitter's diagnostics: listener leak warnings and
// unhandled rejections. Implementations must be safe for concurrent use.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// nopLogger discards everything. It is the default of New.
type nopLogger struct{}

func (nopLogger) WithField(string, any) Logger { return nopLogger{} }
func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(string, ...any)        {}
