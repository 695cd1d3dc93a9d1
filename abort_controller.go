package libevents

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// abortEvent is the internal event name abort signals dispatch on.
const abortEvent = "abort"

type (
	// AbortController owns an AbortSignal and triggers its transition.
	AbortController struct {
		signal *AbortSignal
	}

	// AbortSignal is a one-shot cancellation token backed by an Emitter:
	// aborting emits an internal event exactly once, and abort callbacks are
	// once listeners on it.
	AbortSignal struct {
		mu      sync.RWMutex
		aborted bool
		reason  any
		em      *Emitter
	}
)

var _ Signal = (*AbortSignal)(nil)

// NewAbortController returns a controller with a fresh, unaborted signal.
func NewAbortController() *AbortController {
	return &AbortController{signal: newAbortSignal()}
}

// NewTimeoutController returns a controller whose signal aborts with
// ErrTimedOut once d elapses. The timer cannot be canceled, but aborting
// earlier wins and makes the late timer a no-op.
func NewTimeoutController(d time.Duration) *AbortController {
	return newTimeoutController(d, clock.New())
}

func newTimeoutController(d time.Duration, clk clock.Clock) *AbortController {
	c := NewAbortController()

	clk.AfterFunc(d, func() {
		c.Abort(ErrTimedOut)
	})

	return c
}

func newAbortSignal() *AbortSignal {
	return &AbortSignal{em: New()}
}

// Signal returns the controller's signal.
func (c *AbortController) Signal() *AbortSignal {
	return c.signal
}

// Abort transitions the signal and fires its abort callbacks with reason, in
// registration order, on the calling goroutine. A nil reason becomes
// ErrAborted. Only the first call has any effect.
func (c *AbortController) Abort(reason any) {
	c.signal.abort(reason)
}

func (s *AbortSignal) abort(reason any) {
	if reason == nil {
		reason = ErrAborted
	}

	s.mu.Lock()

	if s.aborted {
		s.mu.Unlock()

		return
	}

	s.aborted = true
	s.reason = reason

	s.mu.Unlock()

	s.em.Emit(abortEvent, reason)
}

// Aborted reports whether the signal transitioned.
func (s *AbortSignal) Aborted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.aborted
}

// Reason returns the abort reason, nil while the signal is live.
func (s *AbortSignal) Reason() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reason
}

// OnAbort registers fn as a once listener on the signal's internal emitter.
// The remove function drops that exact registration, so disposing one of two
// registrations of the same callback never detaches the other.
func (s *AbortSignal) OnAbort(fn func(reason any)) (remove func()) {
	entry := s.em.addEntry(abortEvent, func(args ...any) error {
		var reason any
		if len(args) > 0 {
			reason = args[0]
		}

		fn(reason)

		return nil
	}, true, false)

	s.mu.RLock()
	aborted, reason := s.aborted, s.reason
	s.mu.RUnlock()

	if aborted {
		// The abort dispatch may have missed this entry; whoever removes it
		// first gets to fire it.
		if s.em.removeEntry(abortEvent, entry) {
			fn(reason)
		}

		return func() {}
	}

	return func() {
		s.em.removeEntry(abortEvent, entry)
	}
}
