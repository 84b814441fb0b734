// Package immediate provides a uniform "run this callback as soon as
// possible, but after the current execution turn" primitive on top of
// whichever asynchronous trigger mechanism the host environment offers,
// together with a symmetric cancellation primitive.
//
// Hosts differ in what they provide: some expose a native schedule/cancel
// pair, some a dedicated two-endpoint message channel, some a shared
// broadcast medium, and all of them at least a zero-delay timer. The package
// probes the injected capabilities once at construction, binds the best
// available trigger tier for the scheduler's lifetime, and hides the choice
// behind two operations:
//
//	s, err := immediate.New()
//	if err != nil {
//	    // handle error
//	}
//
//	h, _ := s.Schedule(func(args ...any) {
//	    fmt.Println("runs on the next turn with", args)
//	}, 1, 2, 3)
//
//	// Cancelling before the trigger fires prevents execution entirely.
//	s.Cancel(h)
//
// # Trigger tiers
//
// Tiers are probed in preference order, first match wins:
//
//  1. Native — the host already provides a compliant schedule/cancel pair
//     (injected via WithNative); nothing is installed and the pair is used
//     untouched.
//  2. Pipe — a dedicated two-endpoint message channel (WithPipes or
//     WithPipeMaker); preferred over broadcast because per-task pipes also
//     work where a shared broadcast medium is unavailable.
//  3. Broadcast — a shared broadcast medium (WithBus); accepted only after a
//     probe confirms the medium delivers asynchronously, since same-turn
//     delivery would violate the scheduling contract.
//  4. Timer — a zero-delay timer, always available.
//
// # Guarantees
//
// Handles are positive, strictly increasing, and never reused within a
// scheduler's lifetime. Every task runs at most once; a cancelled task never
// runs. Cancelling an unknown, expired, or already-run handle is a silent
// no-op because a race between firing and cancellation is expected and
// benign. Schedule never blocks.
//
// # Legacy source path
//
// ScheduleSource accepts textual program source instead of a callback and
// hands it whole to an injected SourceRunner with no argument forwarding.
// The path executes arbitrary text as a program and is disabled unless a
// runner is explicitly configured via WithSourceRunner.
package immediate
