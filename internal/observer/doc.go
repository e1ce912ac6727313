// Package observer provides an in-process publish/subscribe notifier.
//
// A Notifier keeps an ordered list of observers and broadcasts values to them
// synchronously, in subscription order, on the caller's goroutine. Files:
//
//   - notifier.go: Notifier, Observer, Subscription and the broadcast loop.
//   - errors.go: ErrInvalidArgument, DeliveryError and Is* helpers.
//   - recorder.go: Recorder, a bounded in-memory observer.
//
// Broadcast semantics:
//
//   - Notify snapshots the subscriber list when it starts and delivers to
//     exactly that snapshot. Observers added or removed while a broadcast is
//     running take effect from the next Notify.
//   - A failing observer (error or panic) does not stop delivery to the rest.
//     Failures are collected and returned as a *DeliveryError once the
//     broadcast completes.
//
// All methods are safe for concurrent use. The lock is never held while an
// observer runs, so observers may call back into the Notifier.
package observer
