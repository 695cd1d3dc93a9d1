package libevents

// NoopEmitter accepts registrations and emits without doing anything. Useful
// as a default collaborator when eventing is disabled.
type NoopEmitter struct{}

func (NoopEmitter) On(string, Listener) error                  { return nil }
func (NoopEmitter) Once(string, Listener) error                { return nil }
func (NoopEmitter) PrependListener(string, Listener) error     { return nil }
func (NoopEmitter) PrependOnceListener(string, Listener) error { return nil }
func (NoopEmitter) Emit(string, ...any) bool                   { return false }
func (NoopEmitter) Off(string, Listener) bool                  { return false }
func (NoopEmitter) RemoveListener(string, Listener) bool       { return false }
func (NoopEmitter) RemoveAllListeners(...string)               {}
func (NoopEmitter) Listeners(string) []Listener                { return nil }
func (NoopEmitter) ListenerCount(string) int                   { return 0 }
func (NoopEmitter) EventNames() []string                       { return nil }
func (NoopEmitter) SetMaxListeners(int) error                  { return nil }
func (NoopEmitter) GetMaxListeners() int                       { return DefaultMaxListeners() }
func (NoopEmitter) CaptureRejections() bool                    { return false }
