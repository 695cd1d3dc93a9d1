package libevents

// EventEmitter is the behavior shared by emitter implementations.
type EventEmitter interface {
	// On appends a listener for the named event.
	On(name string, fn Listener) error

	// Once appends a listener that is removed right before its first
	// invocation.
	Once(name string, fn Listener) error

	// PrependListener inserts a listener at the front of the event's list.
	PrependListener(name string, fn Listener) error

	// PrependOnceListener inserts a once listener at the front of the list.
	PrependOnceListener(name string, fn Listener) error

	// Emit invokes the listeners registered for the named event with args,
	// reporting whether any were registered.
	Emit(name string, args ...any) bool

	// Off is an alias of RemoveListener.
	Off(name string, fn Listener) bool

	// RemoveListener removes the first entry matching fn, scanning from the
	// front, and reports whether one was removed.
	RemoveListener(name string, fn Listener) bool

	// RemoveAllListeners clears the named events, or every event when called
	// with no arguments.
	RemoveAllListeners(names ...string)

	// Listeners returns a copy of the event's callbacks in dispatch order.
	Listeners(name string) []Listener

	// ListenerCount returns the number of listeners the event holds.
	ListenerCount(name string) int

	// EventNames returns the events holding listeners, ordered by first
	// registration.
	EventNames() []string

	// SetMaxListeners overrides the leak warning threshold for this emitter.
	SetMaxListeners(n int) error

	// GetMaxListeners resolves the active leak warning threshold.
	GetMaxListeners() int

	// CaptureRejections reports whether listener errors are intercepted.
	CaptureRejections() bool
}

var (
	_ EventEmitter = (*Emitter)(nil)
	_ EventEmitter = NoopEmitter{}
)
