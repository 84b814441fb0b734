package immediate

import "errors"

// Common errors
var (
	// ErrNilCallback is returned when Schedule is called with a nil callback
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrEmptySource is returned when ScheduleSource is called with empty source text
	ErrEmptySource = errors.New("source text cannot be empty")

	// ErrNoSourceRunner is returned when ScheduleSource is called but no source
	// runner was configured via WithSourceRunner
	ErrNoSourceRunner = errors.New("no source runner configured")

	// ErrNativePairIncomplete is returned when only one half of a native
	// schedule/cancel pair is provided
	ErrNativePairIncomplete = errors.New("native schedule and cancel must be provided together")

	// ErrSchedulerClosed is returned when scheduling on a closed scheduler
	ErrSchedulerClosed = errors.New("scheduler is closed")
)
