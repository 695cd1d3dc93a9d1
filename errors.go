package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNilListener         = errors.New("listener must not be nil")
	ErrInvalidMaxListeners = errors.New("max listeners must be zero or a positive integer")
	ErrNilSignal           = errors.New("abort signal must not be nil")
	ErrAborted             = errors.New("the operation was aborted")
	ErrTimedOut            = errors.New("the operation timed out")
)

// RejectionError carries a failure returned by a listener together with the
// event that produced it. Emitters built with WithCaptureRejections emit it
// on ErrorEvent.
type RejectionError struct {
	event string
	err   error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("listener for event %q rejected: %s", e.event, e.err)
}

func (e *RejectionError) Unwrap() error { return e.err }

// Event returns the name of the event whose listener failed.
func (e *RejectionError) Event() string { return e.event }

func newRejectionError(event string, err error) *RejectionError {
	return &RejectionError{
		event: event,
		err:   err,
	}
}
