// Package pipe implements a dedicated two-endpoint message channel: two
// ports connected back to back, where data posted on one port is delivered
// asynchronously to the listener installed on the other.
//
// The primitive mirrors hosts that offer a dedicated second message channel
// next to their shared broadcast medium. Because every pipe is private to
// its creator, delivery needs no origin filtering and no payload routing:
// whatever arrives on a port was posted by the opposite port.
//
// # Usage
//
//	p := pipe.New()
//	defer p.Close()
//
//	_ = p.Port1().Listen(func(data string) {
//	    fmt.Println("received:", data)
//	})
//
//	_ = p.Port2().Post("hello")
//
// Delivery is FIFO per port and always asynchronous with respect to Post:
// the listener runs on the pipe's delivery goroutine, never in the posting
// call's turn.
//
// # Error Handling
//
// Package-level sentinel errors (ErrPipeClosed, ErrBacklogFull,
// ErrListenerInstalled, ErrNilListener) can be checked with errors.Is.
package pipe
