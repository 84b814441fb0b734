package immediate

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Scheduler is the public façade: Schedule and Cancel delegating to
// whichever trigger tier the capability probe bound at construction.
// Create one with New; the zero value is not usable.
type Scheduler struct {
	log  *slog.Logger
	tier Tier
	reg  *registry // nil on the native tier
	ad   adapter

	sourceRunner SourceRunner

	closed      atomic.Bool
	closeOnce   sync.Once
	unsubscribe func() // persistent broadcast listener, nil on other tiers
}

// New probes the injected capabilities, binds one trigger tier for the
// scheduler's lifetime, and returns the façade. Construction is an explicit
// initialization step: callers receive the scheduler value, no global state
// is touched.
//
// With no options the probe finds no capabilities and binds the timer tier,
// which is always available.
func New(opts ...Option) (*Scheduler, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if (o.nativeSchedule == nil) != (o.nativeCancel == nil) {
		return nil, ErrNativePairIncomplete
	}

	cfg := loadEnvConfig()
	forced := parseTier(cfg.Tier)
	if forced == TierNative {
		// The native tier is injected, never forced.
		forced = TierUnknown
	}

	s := &Scheduler{
		log:          o.logger,
		sourceRunner: o.sourceRunner,
	}
	s.tier = selectTier(o, forced, s.log)

	switch s.tier {
	case TierNative:
		s.ad = newNativeAdapter(o.nativeSchedule, o.nativeCancel)
	case TierPipe:
		s.reg = newRegistry(o.sourceRunner, s.log)
		s.ad = newPipeAdapter(s.reg, o.pipeMaker, s.log)
	case TierBroadcast:
		s.reg = newRegistry(o.sourceRunner, s.log)
		ad, unsubscribe, err := newBroadcastAdapter(s.reg, o.bus, s.log)
		if err != nil {
			return nil, err
		}
		s.ad, s.unsubscribe = ad, unsubscribe
	default:
		s.reg = newRegistry(o.sourceRunner, s.log)
		s.ad = newTimerAdapter(s.reg)
	}

	s.log.Debug("bound trigger tier",
		slog.String("tier", s.tier.String()),
		slog.String("forced", cfg.Tier))

	return s, nil
}

// Schedule arranges cb to run exactly once, asynchronously, at the earliest
// opportunity the bound tier allows, with the given arguments and no
// receiver context. It never blocks and returns the task's handle.
func (s *Scheduler) Schedule(cb Callback, args ...any) (Handle, error) {
	if cb == nil {
		return 0, ErrNilCallback
	}
	if s.closed.Load() {
		return 0, ErrSchedulerClosed
	}

	return s.ad.schedule(task{cb: cb, args: args}), nil
}

// ScheduleSource is the legacy textual-source entry point: src is handed
// whole to the configured SourceRunner as a top-level program with no
// argument forwarding. Callers on this path get none of the
// argument-passing guarantees of Schedule. Without a runner configured via
// WithSourceRunner the path is disabled and ErrNoSourceRunner is returned.
func (s *Scheduler) ScheduleSource(src string) (Handle, error) {
	if s.sourceRunner == nil {
		return 0, ErrNoSourceRunner
	}
	if src == "" {
		return 0, ErrEmptySource
	}
	if s.closed.Load() {
		return 0, ErrSchedulerClosed
	}

	if s.tier == TierNative {
		// The native pair only understands invocable callbacks, so the
		// source is wrapped; runner failures surface on the log exactly as
		// they do on the registry path.
		runner, log := s.sourceRunner, s.log
		cb := func(...any) {
			if err := runner(src); err != nil {
				log.Error("scheduled source failed", slog.String("error", err.Error()))
			}
		}
		return s.ad.schedule(task{cb: cb}), nil
	}

	return s.ad.schedule(task{src: src}), nil
}

// Cancel prevents the task under h from running if it has not run yet.
// Cancelling an unknown, expired, or already-run handle is a silent no-op;
// a task already mid-execution cannot be cancelled.
func (s *Scheduler) Cancel(h Handle) {
	s.ad.cancel(h)
}

// Tier reports which trigger tier the probe bound.
func (s *Scheduler) Tier() Tier {
	return s.tier
}

// Pending reports the number of tasks that have neither run nor been
// cancelled. On the native tier the host owns the tasks and Pending always
// reports 0.
func (s *Scheduler) Pending() int {
	if s.reg == nil {
		return 0
	}
	return s.reg.count()
}

// Close releases the persistent broadcast listener, if any, and rejects
// further scheduling. Already-armed tasks may still fire. Close is
// idempotent and does not close an injected bus — the host owns it.
func (s *Scheduler) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
	return nil
}
