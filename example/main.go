package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sonirico/libevents"
)

func main() {
	fmt.Println("=== libevents Example ===")

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	em := libevents.New(
		libevents.WithCaptureRejections(true),
		libevents.WithLogger(libevents.NewZerologLogger(log)),
	)

	// Pattern 1: Ordered listeners
	fmt.Println("\n--- Pattern 1: Ordered Listeners ---")

	_ = em.On("user.created", func(args ...any) error {
		fmt.Printf("[APPENDED] user created: %v\n", args[0])
		return nil
	})
	_ = em.PrependListener("user.created", func(args ...any) error {
		fmt.Printf("[PREPENDED] audit first: %v\n", args[0])
		return nil
	})

	em.Emit("user.created", 123)
	fmt.Printf("Events registered: %v\n", em.EventNames())

	// Pattern 2: One-shot listeners
	fmt.Println("\n--- Pattern 2: One-Shot Listeners ---")

	_ = em.Once("boot", func(args ...any) error {
		fmt.Println("boot handler runs a single time")
		return nil
	})

	em.Emit("boot")
	if !em.Emit("boot") {
		fmt.Println("second emit found no listeners")
	}

	// Pattern 3: Captured rejections
	fmt.Println("\n--- Pattern 3: Captured Rejections ---")

	_ = em.On(libevents.ErrorEvent, func(args ...any) error {
		rejection := args[0].(*libevents.RejectionError)
		fmt.Printf("captured from %q: %s\n", rejection.Event(), errors.Cause(rejection.Unwrap()))
		return nil
	})
	_ = em.On("user.deleted", func(args ...any) error {
		return errors.New("simulated error during event processing")
	})
	_ = em.On("user.deleted", func(args ...any) error {
		fmt.Println("dispatch continues after the rejection")
		return nil
	})

	em.Emit("user.deleted", 456)

	// Pattern 4: Leak warnings
	fmt.Println("\n--- Pattern 4: Leak Warnings ---")

	_ = em.SetMaxListeners(2)
	for i := 0; i < 3; i++ {
		_ = em.On("metrics.flush", func(args ...any) error { return nil })
	}
	fmt.Printf("threshold: %d, registered: %d (see the warning on stderr)\n",
		em.GetMaxListeners(), em.ListenerCount("metrics.flush"))

	// Pattern 5: Abort signals
	fmt.Println("\n--- Pattern 5: Abort Signals ---")

	ctrl := libevents.NewAbortController()
	d, _ := libevents.AddAbortListener(ctrl.Signal(), func(reason any) {
		fmt.Printf("released resources: %v\n", reason)
	})
	defer d.Dispose()

	ctrl.Abort(errors.New("shutting down"))

	timeout := libevents.NewTimeoutController(20 * time.Millisecond)
	_, _ = libevents.AddAbortListener(timeout.Signal(), func(reason any) {
		fmt.Printf("timed out: %v\n", reason)
	})
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	_, _ = libevents.AddAbortListener(libevents.SignalFromContext(ctx), func(reason any) {
		fmt.Printf("context aborted: %v\n", reason)
		close(done)
	})
	cancel()
	<-done

	fmt.Println("\n=== Example Complete ===")
}
