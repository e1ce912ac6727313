package observer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidArgument is wrapped by errors returned for bad input at the API
// boundary (nil or non-comparable observers).
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, a ...any) error {
	return fmt.Errorf("observer: %s: %w", fmt.Sprintf(format, a...), ErrInvalidArgument)
}

// IsInvalidArgument reports whether err was caused by bad input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// Failure records one observer that failed during a broadcast.
type Failure struct {
	// Index is the observer's position in the broadcast snapshot.
	Index int
	// ID is the subscription id of the failing entry.
	ID  uuid.UUID
	Err error
}

// DeliveryError is returned by Notify when one or more observers failed.
// Observers after a failing one were still invoked.
type DeliveryError struct {
	Attempted int
	Failures  []Failure
}

func (e *DeliveryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "observer: %d of %d deliveries failed", len(e.Failures), e.Attempted)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "; #%d: %v", f.Index, f.Err)
	}
	return b.String()
}

// Unwrap exposes the individual observer errors to errors.Is / errors.As.
func (e *DeliveryError) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f.Err)
	}
	return out
}

// IsDeliveryError reports whether err carries per-observer failures.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}

// panicError wraps a value recovered from a panicking observer.
type panicError struct{ v any }

func (e panicError) Error() string { return fmt.Sprintf("observer panicked: %v", e.v) }

// IsPanic reports whether err (or any error it wraps) came from a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}
