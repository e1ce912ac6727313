package agent

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors for moods outside the closed set.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(msg string) error {
	return fmt.Errorf("agent: %s: %w", msg, ErrInvalidArgument)
}

// IsInvalidArgument reports whether err was caused by bad input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
