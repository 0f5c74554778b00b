// Package jobqueue is the asynchronous wrapper around convert.Convert:
// submit a normalized geomap.Map, poll a task key for its status and
// result, optionally cancel it early. It is the sole caller-visible
// concurrency in this module — the core packages (geomap through
// convert) are single-threaded and synchronous by design.
//
// What
//
//   - Queue.Submit enqueues a task and returns its key immediately.
//   - Queue.Poll returns the task's current Status and, once resolved,
//     its result or error.
//   - Queue.Cancel signals a running or queued task's cancellation
//     token; the core notices it the next time it checks ctx.Err().
//   - Every task gets a 15-second wall clock, enforced by wrapping its
//     context with context.WithTimeout; a task that exceeds it is
//     marked TimedOut, not Failed.
//
// Why
//
//	The core deliberately owns no concurrency or wall-clock policy (see
//	convert's doc comment); jobqueue is where that policy lives, kept
//	entirely separate so the core stays a pure, synchronous function
//	that is trivial to test without a clock.
//
// Determinism
//
//	Task keys are UUIDs (google/uuid), not sequential, so key values are
//	not reproducible across runs; a task's Status transitions are
//	strictly monotonic (Pending -> Processing -> one terminal state, or
//	Pending -> Cancelled for a task cancelled while queued) and never
//	revisited.
package jobqueue
