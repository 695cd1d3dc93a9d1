package libevents

import "sync"

type (
	// Option configures an Emitter at construction time.
	Option func(*Emitter)

	// Emitter dispatches named events to registered listeners, synchronously
	// and in registration order. The zero value is not usable; create
	// emitters with New. All methods are safe for concurrent use.
	Emitter struct {
		mu     sync.RWMutex
		events map[string]*eventList
		order  []string

		captureRejections bool
		maxListeners      int
		logger            Logger
	}
)

// WithCaptureRejections makes the emitter intercept errors returned by
// listeners instead of discarding them. See Emit.
func WithCaptureRejections(capture bool) Option {
	return func(e *Emitter) {
		e.captureRejections = capture
	}
}

// WithLogger sets the logger that receives the emitter's diagnostics,
// listener leak warnings and unhandled rejections. Defaults to a silent
// logger. A nil argument is ignored.
func WithLogger(logger Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Emitter with no listeners registered.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		events:       make(map[string]*eventList),
		maxListeners: maxListenersUnset,
		logger:       nopLogger{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CaptureRejections reports whether errors returned by listeners are
// intercepted and routed to ErrorEvent.
func (e *Emitter) CaptureRejections() bool {
	return e.captureRejections
}

// ensureList returns the registration list for name, creating it and
// recording the name's first-registration order when absent. Callers hold
// the write lock.
func (e *Emitter) ensureList(name string) *eventList {
	list, ok := e.events[name]
	if !ok {
		list = &eventList{}
		e.events[name] = list
		e.order = append(e.order, name)
	}

	return list
}

// dropIfEmpty forgets the event once its list has no entries left, so an
// emptied event is indistinguishable from one that was never registered.
// Callers hold the write lock.
func (e *Emitter) dropIfEmpty(name string, list *eventList) {
	if len(list.entries) > 0 {
		return
	}

	delete(e.events, name)

	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}
