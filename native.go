package immediate

// NativeSchedule is a host-provided scheduling primitive that already meets
// this package's contract: it arranges the callback to run once,
// asynchronously, and returns a positive handle.
type NativeSchedule func(cb Callback, args ...any) Handle

// NativeCancel is the host-provided counterpart cancelling a handle issued
// by its NativeSchedule. Cancelling an unknown or expired handle must be a
// no-op.
type NativeCancel func(h Handle)

// nativeAdapter is a direct alias for a host-provided schedule/cancel pair.
// The registry and task model are bypassed entirely: handles come from the
// host and cancellation goes straight back to it.
type nativeAdapter struct {
	scheduleFn NativeSchedule
	cancelFn   NativeCancel
}

func newNativeAdapter(schedule NativeSchedule, cancel NativeCancel) *nativeAdapter {
	return &nativeAdapter{scheduleFn: schedule, cancelFn: cancel}
}

func (a *nativeAdapter) schedule(t task) Handle {
	return a.scheduleFn(t.cb, t.args...)
}

func (a *nativeAdapter) cancel(h Handle) {
	a.cancelFn(h)
}
