package bus

import "context"

// Message is one datagram on the broadcast medium. Every subscriber of a
// bus sees every message; filtering by Origin and payload convention is the
// consumer's job.
type Message struct {
	// Origin identifies the bus instance that published the message.
	// Consumers use it to reject messages from foreign publishers sharing
	// the same medium.
	Origin string

	// Data is the opaque payload.
	Data string
}

// Handler receives broadcast messages. Handlers must not block: they run on
// the bus's delivery path and a slow handler stalls delivery to everyone
// behind it.
type Handler func(Message)

// Bus is a shared broadcast medium. Implementations differ in where the
// medium lives (in-process, Redis) and in delivery timing — consumers that
// require asynchronous delivery must probe for it rather than assume it.
type Bus interface {
	// Publish sends data to every subscriber, stamped with this instance's
	// origin. Publish never blocks on slow consumers.
	Publish(ctx context.Context, data string) error

	// Subscribe installs a persistent handler and returns a function that
	// removes it. The returned function is idempotent.
	Subscribe(h Handler) (unsubscribe func(), err error)

	// Origin returns the identity this instance stamps on its messages.
	Origin() string

	// Close shuts the bus down and stops delivery. Close is idempotent.
	Close() error
}
