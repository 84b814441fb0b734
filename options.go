package immediate

import (
	"log/slog"

	"github.com/dmitrymomot/immediate/pkg/bus"
	"github.com/dmitrymomot/immediate/pkg/pipe"
)

// Option injects a host capability or setting at construction time.
// Capabilities are opaque to the scheduler: it only cares whether each one
// is present, never how the host implements it.
type Option func(*options)

type options struct {
	logger *slog.Logger

	nativeSchedule NativeSchedule
	nativeCancel   NativeCancel
	pipeMaker      pipe.Maker
	bus            bus.Bus

	sourceRunner SourceRunner
}

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNative declares that the host already exposes a compliant
// schedule/cancel pair. When both halves are present the scheduler installs
// nothing and defers to the pair untouched; providing only one half is a
// construction error.
func WithNative(schedule NativeSchedule, cancel NativeCancel) Option {
	return func(o *options) {
		o.nativeSchedule = schedule
		o.nativeCancel = cancel
	}
}

// WithPipeMaker declares the dedicated two-endpoint message channel
// capability via a custom maker. Nil makers are ignored.
func WithPipeMaker(m pipe.Maker) Option {
	return func(o *options) {
		if m != nil {
			o.pipeMaker = m
		}
	}
}

// WithPipes declares the pipe capability backed by this module's own
// in-process implementation.
func WithPipes() Option {
	return WithPipeMaker(pipe.New)
}

// WithBus declares the shared broadcast medium capability. The bus is only
// bound as the trigger if the asynchrony probe accepts it. Nil buses are
// ignored.
func WithBus(b bus.Bus) Option {
	return func(o *options) {
		if b != nil {
			o.bus = b
		}
	}
}

// WithSourceRunner enables the legacy textual-source path. Without a
// runner, ScheduleSource returns ErrNoSourceRunner. The runner executes
// arbitrary text as a program; configure it only when legacy compatibility
// is explicitly required.
func WithSourceRunner(r SourceRunner) Option {
	return func(o *options) {
		if r != nil {
			o.sourceRunner = r
		}
	}
}
