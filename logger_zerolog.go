package libevents

import "github.com/rs/zerolog"

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a Logger that writes through the given zerolog
// logger. Use it with WithLogger to surface leak warnings and unhandled
// rejections in structured output.
func NewZerologLogger(log zerolog.Logger) Logger {
	return zerologLogger{log: log}
}

func (l zerologLogger) WithField(key string, value any) Logger {
	return zerologLogger{log: l.log.With().Interface(key, value).Logger()}
}

func (l zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
