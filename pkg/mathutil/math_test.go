package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShnitzelKiller/intervaltree/pkg/mathutil"
)

// TestMin verifies ordered minimum selection.
func TestMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, mathutil.Min(1, 2))
	assert.Equal(t, 1, mathutil.Min(2, 1))
	assert.Equal(t, -3.5, mathutil.Min(-3.5, 0.0))
	assert.Equal(t, uint32(7), mathutil.Min(uint32(7), uint32(9)))
}

// TestMax verifies ordered maximum selection.
func TestMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, mathutil.Max(1, 2))
	assert.Equal(t, 2, mathutil.Max(2, 1))
	assert.Equal(t, 0.0, mathutil.Max(-3.5, 0.0))
	assert.Equal(t, uint32(9), mathutil.Max(uint32(7), uint32(9)))
}

// TestMidpoint_Integers verifies the documented rounding rule: the midpoint
// of an integer range rounds toward the lower bound.
func TestMidpoint_Integers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, mathutil.Midpoint(4, 6))
	assert.Equal(t, 5, mathutil.Midpoint(5, 6))
	assert.Equal(t, 5, mathutil.Midpoint(5, 7))
	assert.Equal(t, -2, mathutil.Midpoint(-3, 0))
	assert.Equal(t, uint8(127), mathutil.Midpoint(uint8(0), uint8(255)))
}

// TestMidpoint_Floats verifies exact float midpoints.
func TestMidpoint_Floats(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.5, mathutil.Midpoint(5.0, 6.0), 0)
	assert.InDelta(t, 0.0, mathutil.Midpoint(-1.0, 1.0), 0)
}

// TestMidpoint_AdjacentFloats verifies the degeneracy guard: even when lo and
// hi are adjacent representable values, the midpoint stays strictly below hi,
// so splitting [lo, hi) can never push all entries into one side.
func TestMidpoint_AdjacentFloats(t *testing.T) {
	t.Parallel()

	for _, lo := range []float64{1.0, math.Nextafter(1.0, 2.0), 1e-300, 1e300, 50.732} {
		hi := math.Nextafter(lo, math.Inf(1))

		mid := mathutil.Midpoint(lo, hi)
		assert.GreaterOrEqual(t, mid, lo, "midpoint of [%v, %v) fell below lo", lo, hi)
		assert.Less(t, mid, hi, "midpoint of [%v, %v) reached hi", lo, hi)
	}
}
