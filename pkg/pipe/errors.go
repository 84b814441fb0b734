package pipe

import "errors"

// Common errors
var (
	// ErrPipeClosed is returned when posting on a closed pipe
	ErrPipeClosed = errors.New("pipe is closed")

	// ErrBacklogFull is returned when the receiving port's backlog is full
	ErrBacklogFull = errors.New("port backlog is full")

	// ErrListenerInstalled is returned when a port already has a listener
	ErrListenerInstalled = errors.New("port already has a listener")

	// ErrNilListener is returned when Listen is called with a nil function
	ErrNilListener = errors.New("listener cannot be nil")
)
