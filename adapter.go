package immediate

// adapter is the single contract every trigger tier implements. Exactly one
// adapter is constructed per scheduler, selected by the capability probe at
// construction time, and bound for the scheduler's lifetime.
//
// schedule arranges for the task to run exactly once, asynchronously, at the
// earliest opportunity the underlying mechanism allows, and returns the
// task's handle. cancel prevents a still-pending task from running; it is a
// no-op for handles that already ran or were never issued.
type adapter interface {
	schedule(t task) Handle
	cancel(h Handle)
}
