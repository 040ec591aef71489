package intervaltree

import (
	"errors"
	"fmt"

	"github.com/ShnitzelKiller/intervaltree/pkg/mathutil"
)

// ErrInvalidInterval is returned when an interval's end does not exceed its
// start. Half-open intervals must have positive length; admitting a
// zero-length or inverted interval would corrupt the tree's partition
// invariants and later queries.
var ErrInvalidInterval = errors.New("interval end must be greater than start")

// Real is the constraint for interval coordinates: totally ordered numeric
// types that support midpoint arithmetic.
type Real = mathutil.Real

// Interval represents the half-open range [Start, End): inclusive of Start,
// exclusive of End. End must be strictly greater than Start.
type Interval[T Real] struct {
	Start T
	End   T
}

// NewInterval returns the half-open interval [start, end).
// It returns ErrInvalidInterval when end <= start.
func NewInterval[T Real](start, end T) (Interval[T], error) {
	iv := Interval[T]{Start: start, End: end}
	if !iv.Valid() {
		return Interval[T]{}, ErrInvalidInterval
	}

	return iv, nil
}

// Valid reports whether the interval has positive length.
func (iv Interval[T]) Valid() bool {
	return iv.End > iv.Start
}

// Contains reports whether point falls inside the interval under half-open
// semantics: Start <= point < End.
func (iv Interval[T]) Contains(point T) bool {
	return iv.Start <= point && point < iv.End
}

// Overlaps reports whether the interval intersects the half-open range
// [start, end).
func (iv Interval[T]) Overlaps(start, end T) bool {
	return iv.Start < end && start < iv.End
}

// String renders the interval in half-open notation.
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", iv.Start, iv.End)
}

// Entry pairs an interval with its stored value. The tree is a multi-map:
// entries with identical or overlapping intervals coexist, and nothing is
// deduplicated.
type Entry[T Real, V any] struct {
	Interval Interval[T]
	Value    V
}
