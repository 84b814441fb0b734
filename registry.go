package immediate

import (
	"log/slog"
	"sync"
)

// Handle is an opaque positive identifier for one scheduled task. Handles
// are strictly increasing, start at 1, and are never reused within a
// scheduler's lifetime. Callers only ever hold the handle value; the task
// itself is owned by the registry.
type Handle uint64

// Callback is an invocable scheduled via Schedule. It is invoked with the
// argument sequence captured at schedule time and no receiver context,
// matching conventional timer semantics.
type Callback func(args ...any)

// SourceRunner interprets textual program source scheduled via
// ScheduleSource. The source is executed as a top-level program with no
// arguments; its side-effect and scoping semantics are entirely the
// runner's.
type SourceRunner func(src string) error

// task is the material scheduled for execution: either an invocable
// callback with captured arguments, or textual source for the legacy path
// (arguments are ignored there).
type task struct {
	cb   Callback
	args []any
	src  string
}

// registry owns the pending set. A handle is present in the set if and only
// if its task has neither run nor been cancelled. Trigger delivery happens
// on adapter goroutines, so the set is mutex-guarded.
type registry struct {
	mu      sync.Mutex
	next    Handle
	pending map[Handle]task

	runner SourceRunner
	log    *slog.Logger
}

func newRegistry(runner SourceRunner, log *slog.Logger) *registry {
	return &registry{
		next:    1,
		pending: make(map[Handle]task),
		runner:  runner,
		log:     log,
	}
}

// register stores a new task under a freshly minted handle and returns the
// handle. The numeric range is treated as inexhaustible.
func (r *registry) register(t task) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.pending[h] = t
	return h
}

// runIfPresent invokes the task stored under h synchronously in the
// caller's turn and removes it. An absent handle (already run or cancelled)
// is a silent no-op: a race between cancellation and firing is expected.
//
// The entry is deleted before the task is invoked so that a panic inside
// the callback still preserves the at-most-once invariant. The panic itself
// is not intercepted and propagates on the delivering goroutine.
func (r *registry) runIfPresent(h Handle) {
	r.mu.Lock()
	t, ok := r.pending[h]
	if ok {
		delete(r.pending, h)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	if t.src != "" {
		if err := r.runner(t.src); err != nil {
			r.log.Error("scheduled source failed",
				slog.Uint64("handle", uint64(h)),
				slog.String("error", err.Error()))
		}
		return
	}

	t.cb(t.args...)
}

// remove unconditionally deletes any entry under h. No-op if absent.
func (r *registry) remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pending, h)
}

// count reports the number of pending tasks.
func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pending)
}
