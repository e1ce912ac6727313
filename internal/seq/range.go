// Package seq provides small iterator helpers.
package seq

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidArgument is wrapped by errors for non-positive steps and limits.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument reports whether err was caused by bad input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// Range yields start+step, start+2*step, ... while the previous value is
// below end. The last value may overshoot end: Range(0, 10, 4) yields 4, 8, 12.
// The sequence also stops before a step would overflow int.
func Range(start, end, step int) (iter.Seq[int], error) {
	if step <= 0 {
		return nil, fmt.Errorf("seq: step %d must be positive: %w", step, ErrInvalidArgument)
	}
	return func(yield func(int) bool) {
		for cur := start; cur < end; {
			if cur > math.MaxInt-step {
				return
			}
			cur += step
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Collect gathers at most limit values from s.
func Collect(s iter.Seq[int], limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("seq: limit %d must be positive: %w", limit, ErrInvalidArgument)
	}
	var out []int
	for v := range s {
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
