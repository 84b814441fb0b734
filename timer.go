package immediate

import "time"

// timerAdapter is the universal fallback tier: it arms a zero-delay timer
// per scheduled task. The timer callback runs on its own goroutine, which
// gives the required asynchronous gap between arming and firing.
type timerAdapter struct {
	reg *registry
}

func newTimerAdapter(reg *registry) *timerAdapter {
	return &timerAdapter{reg: reg}
}

func (a *timerAdapter) schedule(t task) Handle {
	h := a.reg.register(t)
	time.AfterFunc(0, func() {
		a.reg.runIfPresent(h)
	})
	return h
}

func (a *timerAdapter) cancel(h Handle) {
	a.reg.remove(h)
}
