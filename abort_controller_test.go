package libevents

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestAbortControllerTransitionsOnce(t *testing.T) {
	ctrl := NewAbortController()
	sig := ctrl.Signal()

	require.False(t, sig.Aborted())
	require.Nil(t, sig.Reason())

	var order []string
	_ = sig.OnAbort(func(reason any) {
		order = append(order, fmt.Sprintf("first:%v", reason))
	})
	_ = sig.OnAbort(func(reason any) {
		order = append(order, fmt.Sprintf("second:%v", reason))
	})

	ctrl.Abort("halt")

	require.True(t, sig.Aborted())
	require.Equal(t, "halt", sig.Reason())
	require.Equal(t, []string{"first:halt", "second:halt"}, order)

	// Later aborts neither refire nor replace the reason.
	ctrl.Abort("other")

	require.Equal(t, "halt", sig.Reason())
	require.Len(t, order, 2)
}

func TestAbortNilReasonBecomesErrAborted(t *testing.T) {
	ctrl := NewAbortController()

	var got any
	_ = ctrl.Signal().OnAbort(func(reason any) {
		got = reason
	})

	ctrl.Abort(nil)

	require.Equal(t, ErrAborted, got)
	require.Equal(t, ErrAborted, ctrl.Signal().Reason())
}

func TestOnAbortAlreadyAborted(t *testing.T) {
	ctrl := NewAbortController()
	ctrl.Abort("done")

	var got []any
	remove := ctrl.Signal().OnAbort(func(reason any) {
		got = append(got, reason)
	})

	require.Equal(t, []any{"done"}, got, "fires synchronously on a spent signal")

	remove()
	remove()

	require.Len(t, got, 1)
}

func TestOnAbortRemovePreventsFire(t *testing.T) {
	ctrl := NewAbortController()

	fired := false
	remove := ctrl.Signal().OnAbort(func(reason any) {
		fired = true
	})

	remove()
	remove()
	ctrl.Abort("halt")

	require.False(t, fired)
}

func TestOnAbortSameCallbackDisposeOne(t *testing.T) {
	ctrl := NewAbortController()

	calls := 0
	cb := func(reason any) {
		calls++
	}

	// Two registrations of the same callback are distinct; removing one
	// leaves the other armed.
	removeFirst := ctrl.Signal().OnAbort(cb)
	_ = ctrl.Signal().OnAbort(cb)

	removeFirst()
	ctrl.Abort("halt")

	require.Equal(t, 1, calls)
}

func TestTimeoutControllerFires(t *testing.T) {
	clk := clock.NewMock()
	ctrl := newTimeoutController(50*time.Millisecond, clk)

	require.False(t, ctrl.Signal().Aborted())

	clk.Add(49 * time.Millisecond)
	require.False(t, ctrl.Signal().Aborted())

	clk.Add(time.Millisecond)
	require.True(t, ctrl.Signal().Aborted())
	require.Equal(t, ErrTimedOut, ctrl.Signal().Reason())
}

func TestTimeoutControllerManualAbortWins(t *testing.T) {
	clk := clock.NewMock()
	ctrl := newTimeoutController(time.Second, clk)

	ctrl.Abort("manual")
	clk.Add(2 * time.Second)

	require.Equal(t, "manual", ctrl.Signal().Reason())
}

func TestSignalFromContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := SignalFromContext(ctx)

	require.False(t, sig.Aborted())
	require.Nil(t, sig.Reason())

	reasons := make(chan any, 1)
	_ = sig.OnAbort(func(reason any) {
		reasons <- reason
	})

	cancel()

	select {
	case reason := <-reasons:
		require.Equal(t, context.Canceled, reason)
	case <-time.After(2 * time.Second):
		t.Fatal("abort callback never fired")
	}

	require.True(t, sig.Aborted())
	require.Equal(t, context.Canceled, sig.Reason())
}

func TestSignalFromContextCause(t *testing.T) {
	cause := errors.New("deadline moved")
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(cause)

	sig := SignalFromContext(ctx)

	require.True(t, sig.Aborted())
	require.Equal(t, cause, sig.Reason())

	var got any
	_ = sig.OnAbort(func(reason any) {
		got = reason
	})

	require.Equal(t, cause, got, "fires synchronously on a done context")
}

func TestSignalFromContextDispose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := SignalFromContext(ctx)

	fired := atomic.NewBool(false)
	remove := sig.OnAbort(func(reason any) {
		fired.Store(true)
	})

	remove()
	cancel()

	time.Sleep(50 * time.Millisecond)
	require.False(t, fired.Load(), "a removed callback never runs")
}

func TestAddAbortListenerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	reasons := make(chan any, 1)
	d, err := AddAbortListener(SignalFromContext(ctx), func(reason any) {
		reasons <- reason
	})
	require.NoError(t, err)
	defer d.Dispose()

	cancel()

	select {
	case reason := <-reasons:
		require.Equal(t, context.Canceled, reason)
	case <-time.After(2 * time.Second):
		t.Fatal("abort callback never fired")
	}
}
