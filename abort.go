package libevents

import (
	"sync"

	"github.com/pkg/errors"
)

type (
	// Signal is the capability a cancellation token must expose to
	// AddAbortListener. AbortSignal and SignalFromContext both satisfy it.
	Signal interface {
		// Aborted reports whether the signal already transitioned.
		Aborted() bool

		// Reason returns the value the signal aborted with, nil before the
		// transition.
		Reason() any

		// OnAbort registers fn to run exactly once when the signal aborts.
		// Registering on an already aborted signal invokes fn before
		// returning. The remove function drops that exact registration and
		// is safe to call any number of times; calling it before the
		// transition guarantees fn never runs.
		OnAbort(fn func(reason any)) (remove func())
	}

	// Disposable detaches a registration made by AddAbortListener. Dispose
	// is idempotent: disposing twice, or after the signal fired, is a no-op.
	Disposable interface {
		Dispose()
	}

	disposable struct {
		once   sync.Once
		remove func()
	}
)

func (d *disposable) Dispose() {
	d.once.Do(func() {
		if d.remove != nil {
			d.remove()
		}
	})
}

// AddAbortListener invokes resource with the abort reason exactly once when
// signal aborts. A signal that already aborted fires resource synchronously
// before AddAbortListener returns, and the returned handle is spent.
// Disposing the handle before the transition guarantees resource never runs.
func AddAbortListener(signal Signal, resource func(reason any)) (Disposable, error) {
	if signal == nil {
		return nil, ErrNilSignal
	}

	if resource == nil {
		return nil, errors.Wrap(ErrNilListener, "abort resource")
	}

	if signal.Aborted() {
		resource(signal.Reason())

		return &disposable{}, nil
	}

	return &disposable{remove: signal.OnAbort(resource)}, nil
}
