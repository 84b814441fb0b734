package bus

import "errors"

// Common errors
var (
	// ErrBusClosed is returned when publishing on a closed bus
	ErrBusClosed = errors.New("bus is closed")

	// ErrBusOverflow is returned when the bus cannot accept more messages
	ErrBusOverflow = errors.New("bus backlog is full")

	// ErrNilHandler is returned when Subscribe is called with a nil handler
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrFailedToParseRedisConnString is returned when the Redis connection URL is invalid
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be reached
	ErrRedisNotReady = errors.New("redis server is not ready")
)
