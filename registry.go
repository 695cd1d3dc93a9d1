package libevents

import "github.com/pkg/errors"

// On appends fn to the listener list of the named event. Registering the
// same callback twice keeps two entries, each invoked on every emit.
func (e *Emitter) On(name string, fn Listener) error {
	return e.addListener(name, fn, false, false)
}

// Once appends fn like On, except the entry is removed right before its
// first invocation and never fires again.
func (e *Emitter) Once(name string, fn Listener) error {
	return e.addListener(name, fn, true, false)
}

// PrependListener inserts fn at the front of the named event's list, so it
// runs before previously registered listeners.
func (e *Emitter) PrependListener(name string, fn Listener) error {
	return e.addListener(name, fn, false, true)
}

// PrependOnceListener inserts a once entry at the front of the list.
func (e *Emitter) PrependOnceListener(name string, fn Listener) error {
	return e.addListener(name, fn, true, true)
}

func (e *Emitter) addListener(name string, fn Listener, once, prepend bool) error {
	if fn == nil {
		return errors.Wrapf(ErrNilListener, "event %q", name)
	}

	e.addEntry(name, fn, once, prepend)

	return nil
}

// addEntry registers fn and emits the leak diagnostic at most once per list,
// when the list first grows past the active threshold.
func (e *Emitter) addEntry(name string, fn Listener, once, prepend bool) *listenerEntry {
	entry := &listenerEntry{fn: fn, ptr: funcPointer(fn), once: once}

	e.mu.Lock()

	list := e.ensureList(name)
	if prepend {
		list.entries = append([]*listenerEntry{entry}, list.entries...)
	} else {
		list.entries = append(list.entries, entry)
	}

	count := len(list.entries)
	warn := false

	if max := e.effectiveMaxListeners(); max > UnlimitedListeners && count > max && !list.warned {
		list.warned = true
		warn = true
	}

	e.mu.Unlock()

	if warn {
		e.logger.WithField("event", name).Warnf(
			"possible listener leak detected: %d listeners added to %q, use SetMaxListeners to raise the threshold",
			count, name,
		)
	}

	return entry
}

// Off is an alias of RemoveListener.
func (e *Emitter) Off(name string, fn Listener) bool {
	return e.RemoveListener(name, fn)
}

// RemoveListener removes the first entry of the named event whose callback
// matches fn, scanning from the front of the list. It reports whether an
// entry was removed; removing an unknown listener or event is a no-op.
func (e *Emitter) RemoveListener(name string, fn Listener) bool {
	if fn == nil {
		return false
	}

	ptr := funcPointer(fn)

	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.events[name]
	if list == nil {
		return false
	}

	for i, entry := range list.entries {
		if entry.ptr == ptr {
			list.entries = append(list.entries[:i], list.entries[i+1:]...)
			e.dropIfEmpty(name, list)

			return true
		}
	}

	return false
}

// removeEntry drops one specific registration. The dispatcher uses it to
// consume once entries and abort signals use it to dispose theirs; it
// reports false when the entry is already gone.
func (e *Emitter) removeEntry(name string, target *listenerEntry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.events[name]
	if list == nil {
		return false
	}

	for i, entry := range list.entries {
		if entry == target {
			list.entries = append(list.entries[:i], list.entries[i+1:]...)
			e.dropIfEmpty(name, list)

			return true
		}
	}

	return false
}

// RemoveAllListeners clears the lists of the named events, or of every event
// when called with no arguments. Unknown names are ignored.
func (e *Emitter) RemoveAllListeners(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(names) == 0 {
		e.events = make(map[string]*eventList)
		e.order = nil

		return
	}

	for _, name := range names {
		list := e.events[name]
		if list == nil {
			continue
		}

		list.entries = nil
		e.dropIfEmpty(name, list)
	}
}

// Listeners returns a copy of the callbacks registered for the named event,
// in dispatch order. Mutating the returned slice does not affect the
// emitter.
func (e *Emitter) Listeners(name string) []Listener {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list := e.events[name]
	if list == nil {
		return nil
	}

	listeners := make([]Listener, 0, len(list.entries))
	for _, entry := range list.entries {
		listeners = append(listeners, entry.fn)
	}

	return listeners
}

// ListenerCount returns the number of listeners registered for the named
// event, zero for unknown events.
func (e *Emitter) ListenerCount(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if list := e.events[name]; list != nil {
		return len(list.entries)
	}

	return 0
}

// EventNames returns the names that hold at least one listener, ordered by
// first registration.
func (e *Emitter) EventNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, len(e.order))
	copy(names, e.order)

	return names
}
