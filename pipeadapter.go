package immediate

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/immediate/pkg/pipe"
)

// pipeAdapter arms tasks through a dedicated two-endpoint message pipe. A
// fresh pipe is created per scheduled task and torn down after delivery, so
// no handle routing is needed and collisions are impossible.
type pipeAdapter struct {
	reg     *registry
	newPipe pipe.Maker
	log     *slog.Logger
}

func newPipeAdapter(reg *registry, maker pipe.Maker, log *slog.Logger) *pipeAdapter {
	return &pipeAdapter{reg: reg, newPipe: maker, log: log}
}

func (a *pipeAdapter) schedule(t task) Handle {
	h := a.reg.register(t)

	p := a.newPipe()
	if err := p.Port1().Listen(func(string) {
		a.reg.runIfPresent(h)
		_ = p.Close()
	}); err != nil {
		// A maker handing out a pipe with a pre-installed listener breaks
		// the capability contract. Fall back to a zero-delay timer so the
		// task still fires.
		a.log.Error("pipe listener rejected, falling back to timer",
			slog.Uint64("handle", uint64(h)),
			slog.String("error", err.Error()))
		_ = p.Close()
		time.AfterFunc(0, func() { a.reg.runIfPresent(h) })
		return h
	}

	if err := p.Port2().Post(""); err != nil {
		a.log.Error("pipe post failed, falling back to timer",
			slog.Uint64("handle", uint64(h)),
			slog.String("error", err.Error()))
		_ = p.Close()
		time.AfterFunc(0, func() { a.reg.runIfPresent(h) })
	}

	return h
}

func (a *pipeAdapter) cancel(h Handle) {
	a.reg.remove(h)
}
