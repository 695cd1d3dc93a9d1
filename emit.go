package libevents

// ErrorEvent is the reserved event name that receives captured rejections.
const ErrorEvent = "error"

// Emit synchronously invokes every listener registered for the named event,
// in registration order, passing args to each one. It reports whether the
// event had listeners at the time of the call.
//
// The listener list is snapshotted before dispatch: listeners may register
// or remove listeners for the same event, including themselves, without
// changing which entries this emit invokes. A panicking listener aborts the
// dispatch and the panic reaches the caller untouched; listeners later in
// the snapshot do not run. Errors returned by listeners never abort the
// dispatch: they are discarded unless the emitter was built with
// WithCaptureRejections, in which case each one is wrapped in a
// RejectionError and emitted on ErrorEvent.
func (e *Emitter) Emit(name string, args ...any) bool {
	e.mu.RLock()

	var snapshot []*listenerEntry
	if list := e.events[name]; list != nil {
		snapshot = append(snapshot, list.entries...)
	}

	e.mu.RUnlock()

	if len(snapshot) == 0 {
		return false
	}

	for _, entry := range snapshot {
		if entry.once && !e.removeEntry(name, entry) {
			// Already consumed by a reentrant emit or removed mid-dispatch.
			continue
		}

		e.invoke(name, entry, args)
	}

	return true
}

func (e *Emitter) invoke(name string, entry *listenerEntry, args []any) {
	err := entry.fn(args...)
	if err == nil || !e.captureRejections {
		return
	}

	e.captureRejection(name, err)
}

// captureRejection hands a listener failure to the ErrorEvent listeners.
// Failures raised while handling ErrorEvent itself, or when no ErrorEvent
// listener exists, go to the logger instead.
func (e *Emitter) captureRejection(name string, err error) {
	if name != ErrorEvent {
		if e.Emit(ErrorEvent, newRejectionError(name, err)) {
			return
		}
	}

	e.logger.WithField("event", name).Errorf("unhandled rejection: %s", err)
}
