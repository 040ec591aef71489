// Package mathutil provides generic math helper functions for ordered
// numeric types.
package mathutil

import "cmp"

// Real is the constraint for coordinate types: totally ordered numeric types
// that support midpoint arithmetic.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min calculates the minimum of two ordered values.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max calculates the maximum of two ordered values.
func Max[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}

	return a
}

// Midpoint returns the coordinate halfway between lo and hi; lo must not
// exceed hi. For integer types the result rounds toward lo (truncating
// division), so center selection is deterministic across platforms.
//
// When limited precision collapses the midpoint onto hi — possible when lo
// and hi are adjacent floating-point values — lo is returned instead, so a
// caller splitting [lo, hi) always receives a point strictly below hi.
func Midpoint[T Real](lo, hi T) T {
	mid := lo + (hi-lo)/2
	if mid == hi {
		return lo
	}

	return mid
}
