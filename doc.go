// Package libevents implements a synchronous in-process event emitter:
// callbacks are registered against named events and invoked, in registration
// order, whenever the event is emitted.
//
//	em := libevents.New()
//
//	_ = em.On("greet", func(args ...any) error {
//		fmt.Println("hello,", args[0])
//		return nil
//	})
//
//	em.Emit("greet", "world") // hello, world
//
// Listeners run synchronously on the emitting goroutine while no internal
// lock is held, so they may freely register or remove listeners, emit other
// events, or block without stalling goroutines that use the same emitter.
//
// Removal matches callbacks by function identity. Closures created at the
// same source location share an identity, so keep a named reference to any
// listener you intend to remove individually.
//
// No method returns the emitter for chaining; mutators return an error or a
// removal indicator instead.
package libevents
