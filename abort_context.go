package libevents

import (
	"context"

	"go.uber.org/atomic"
)

// contextSignal adapts a context.Context to the Signal capability. Abort
// callbacks registered on a live context fire on a watcher goroutine once
// the context is done, so their delivery is asynchronous, unlike
// AbortSignal's synchronous dispatch.
type contextSignal struct {
	ctx context.Context
}

var _ Signal = contextSignal{}

// SignalFromContext returns a Signal that aborts when ctx is done, with
// context.Cause(ctx) as the reason.
func SignalFromContext(ctx context.Context) Signal {
	return contextSignal{ctx: ctx}
}

func (s contextSignal) Aborted() bool {
	return s.ctx.Err() != nil
}

func (s contextSignal) Reason() any {
	if s.ctx.Err() == nil {
		return nil
	}

	return context.Cause(s.ctx)
}

func (s contextSignal) OnAbort(fn func(reason any)) (remove func()) {
	if s.ctx.Err() != nil {
		fn(context.Cause(s.ctx))

		return func() {}
	}

	fired := atomic.NewBool(false)
	stop := make(chan struct{})

	go func() {
		select {
		case <-s.ctx.Done():
			if fired.CompareAndSwap(false, true) {
				fn(context.Cause(s.ctx))
			}
		case <-stop:
		}
	}()

	return func() {
		if fired.CompareAndSwap(false, true) {
			close(stop)
		}
	}
}
