package libevents

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// UnlimitedListeners disables the listener leak warning when passed to
// SetMaxListeners or SetDefaultMaxListeners.
const UnlimitedListeners = 0

// maxListenersUnset marks emitters without a per-instance threshold.
const maxListenersUnset = -1

// defaultMaxListeners is the process-wide threshold shared by every emitter
// without a per-instance override.
var defaultMaxListeners = atomic.NewInt64(10)

// DefaultMaxListeners returns the process-wide listener threshold consulted
// by emitters without a per-instance override.
func DefaultMaxListeners() int {
	return int(defaultMaxListeners.Load())
}

// SetDefaultMaxListeners replaces the process-wide threshold for every
// emitter without a per-instance override, including emitters created
// before the call. UnlimitedListeners disables the warning; negative values
// are rejected with ErrInvalidMaxListeners.
func SetDefaultMaxListeners(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidMaxListeners, "default %d", n)
	}

	defaultMaxListeners.Store(int64(n))

	return nil
}

// SetMaxListeners overrides the listener threshold for this emitter.
// UnlimitedListeners disables the warning; negative values are rejected with
// ErrInvalidMaxListeners.
func (e *Emitter) SetMaxListeners(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidMaxListeners, "max %d", n)
	}

	e.mu.Lock()
	e.maxListeners = n
	e.mu.Unlock()

	return nil
}

// GetMaxListeners returns this emitter's threshold, falling back to
// DefaultMaxListeners when no override was set.
func (e *Emitter) GetMaxListeners() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.effectiveMaxListeners()
}

// effectiveMaxListeners resolves the active threshold. Callers hold e.mu.
func (e *Emitter) effectiveMaxListeners() int {
	if e.maxListeners == maxListenersUnset {
		return DefaultMaxListeners()
	}

	return e.maxListeners
}
