package libevents

import "reflect"

type (
	// Listener is the callback shape accepted by every registration method.
	// It receives the arguments passed to Emit. A non-nil error reports a
	// deferred failure: Emit never returns it, but emitters constructed with
	// WithCaptureRejections route it to the ErrorEvent listeners, or to the
	// logger when none are registered.
	Listener func(args ...any) error

	// listenerEntry is one registration: the callback plus its dispatch
	// policy. The identity pointer is taken from the original callback, so
	// removal by callback reference works for once registrations too.
	listenerEntry struct {
		fn   Listener
		ptr  uintptr
		once bool
	}

	// eventList holds the ordered registrations of a single event name.
	eventList struct {
		entries []*listenerEntry
		warned  bool
	}
)

// funcPointer returns the identity used to match callbacks on removal.
func funcPointer(fn Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
