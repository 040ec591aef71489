package intervaltree

import (
	"cmp"
	"slices"

	"github.com/ShnitzelKiller/intervaltree/pkg/mathutil"
)

// node is one partition unit of the tree. It keeps the entries that overlap
// its center coordinate, together with two index permutations over them
// (ascending by interval start, ascending by interval end), and owns at most
// two children. Every entry anywhere in the left subtree ends at or before
// xCenter; every entry anywhere in the right subtree starts after it.
type node[T Real, V any] struct {
	left    *node[T, V]
	right   *node[T, V]
	center  []Entry[T, V]
	byStart []int
	byEnd   []int
	xCenter T
}

// buildNode recursively constructs a subtree from entries; len(entries) must
// be at least 1. The center coordinate is the midpoint of the entries' full
// coordinate span, which keeps the partition balanced for evenly distributed
// input. Children are fully built before being attached.
func buildNode[T Real, V any](entries []Entry[T, V]) *node[T, V] {
	tMin := entries[0].Interval.Start
	tMax := entries[0].Interval.End

	for _, e := range entries[1:] {
		tMin = mathutil.Min(tMin, e.Interval.Start)
		tMax = mathutil.Max(tMax, e.Interval.End)
	}

	n := &node[T, V]{xCenter: mathutil.Midpoint(tMin, tMax)}

	var left, right []Entry[T, V]

	for _, e := range entries {
		switch {
		case e.Interval.End <= n.xCenter:
			left = append(left, e)
		case e.Interval.Start > n.xCenter:
			right = append(right, e)
		default:
			n.center = append(n.center, e)
		}
	}

	n.resort()

	if len(left) > 0 {
		n.left = buildNode(left)
	}

	if len(right) > 0 {
		n.right = buildNode(right)
	}

	return n
}

// newLeaf creates a single-entry node centered on the entry's own midpoint.
func newLeaf[T Real, V any](iv Interval[T], value V) *node[T, V] {
	return &node[T, V]{
		xCenter: mathutil.Midpoint(iv.Start, iv.End),
		center:  []Entry[T, V]{{Interval: iv, Value: value}},
		byStart: []int{0},
		byEnd:   []int{0},
	}
}

// insert routes one entry down the tree. Existing nodes are never
// restructured: the entry either lands in some node's center list or becomes
// a new single-entry leaf where no child exists.
func (n *node[T, V]) insert(iv Interval[T], value V) {
	switch {
	case iv.End <= n.xCenter:
		if n.left == nil {
			n.left = newLeaf(iv, value)
		} else {
			n.left.insert(iv, value)
		}
	case iv.Start > n.xCenter:
		if n.right == nil {
			n.right = newLeaf(iv, value)
		} else {
			n.right.insert(iv, value)
		}
	default:
		n.center = append(n.center, Entry[T, V]{Interval: iv, Value: value})
		n.resort()
	}
}

// resort rebuilds both index permutations over the center list, extending
// them first when the list has grown.
func (n *node[T, V]) resort() {
	for len(n.byStart) < len(n.center) {
		n.byStart = append(n.byStart, len(n.byStart))
		n.byEnd = append(n.byEnd, len(n.byEnd))
	}

	slices.SortFunc(n.byStart, func(a, b int) int {
		return cmp.Compare(n.center[a].Interval.Start, n.center[b].Interval.Start)
	})
	slices.SortFunc(n.byEnd, func(a, b int) int {
		return cmp.Compare(n.center[a].Interval.End, n.center[b].Interval.End)
	})
}

// query appends every center entry containing point and descends into the one
// child that can still hold matches.
func (n *node[T, V]) query(point T, results *[]Entry[T, V]) {
	if point <= n.xCenter {
		// Ascending-start scan: once a start exceeds the point, every later
		// entry in this order does too. The right subtree is excluded
		// outright: all of its entries start after xCenter >= point.
		for _, idx := range n.byStart {
			if n.center[idx].Interval.Start > point {
				break
			}

			*results = append(*results, n.center[idx])
		}

		if n.left != nil {
			n.left.query(point, results)
		}

		return
	}

	// Descending-end scan: once an end drops to the point or below, every
	// remaining entry in this order ends earlier still. The left subtree is
	// excluded: all of its entries end at or before xCenter < point.
	for i := len(n.byEnd) - 1; i >= 0; i-- {
		idx := n.byEnd[i]
		if n.center[idx].Interval.End <= point {
			break
		}

		*results = append(*results, n.center[idx])
	}

	if n.right != nil {
		n.right.query(point, results)
	}
}

// queryRange appends every center entry overlapping the half-open range
// [start, end) and descends into each child that can still hold matches.
func (n *node[T, V]) queryRange(start, end T, results *[]Entry[T, V]) {
	switch {
	case end <= n.xCenter:
		// The range lies at or left of the center. Center entries all end
		// beyond xCenter, so overlap reduces to Start < end; the early exit
		// mirrors the stabbing scan. The right subtree starts after xCenter.
		for _, idx := range n.byStart {
			if n.center[idx].Interval.Start >= end {
				break
			}

			*results = append(*results, n.center[idx])
		}

		if n.left != nil {
			n.left.queryRange(start, end, results)
		}
	case start > n.xCenter:
		// The range lies right of the center. Center entries all start at or
		// before xCenter, so overlap reduces to End > start. The left
		// subtree ends at or before xCenter.
		for i := len(n.byEnd) - 1; i >= 0; i-- {
			idx := n.byEnd[i]
			if n.center[idx].Interval.End <= start {
				break
			}

			*results = append(*results, n.center[idx])
		}

		if n.right != nil {
			n.right.queryRange(start, end, results)
		}
	default:
		// The range straddles the center, so every center entry overlaps and
		// both subtrees may hold matches.
		for _, idx := range n.byStart {
			*results = append(*results, n.center[idx])
		}

		if n.left != nil {
			n.left.queryRange(start, end, results)
		}

		if n.right != nil {
			n.right.queryRange(start, end, results)
		}
	}
}

// clone deep-copies the subtree: fresh center list, fresh permutations, and
// recursively cloned children, so the copy shares no mutable state with the
// source.
func (n *node[T, V]) clone() *node[T, V] {
	c := &node[T, V]{
		xCenter: n.xCenter,
		center:  slices.Clone(n.center),
		byStart: slices.Clone(n.byStart),
		byEnd:   slices.Clone(n.byEnd),
	}

	if n.left != nil {
		c.left = n.left.clone()
	}

	if n.right != nil {
		c.right = n.right.clone()
	}

	return c
}

// walk appends the subtree's entries in traversal order: center list first,
// then left, then right.
func (n *node[T, V]) walk(results *[]Entry[T, V]) {
	*results = append(*results, n.center...)

	if n.left != nil {
		n.left.walk(results)
	}

	if n.right != nil {
		n.right.walk(results)
	}
}

// height returns the number of levels in the subtree rooted at n.
func (n *node[T, V]) height() int {
	h := 0

	if n.left != nil {
		h = n.left.height()
	}

	if n.right != nil {
		h = mathutil.Max(h, n.right.height())
	}

	return h + 1
}

// collectStats accumulates node count and center-list extremes over the
// subtree.
func (n *node[T, V]) collectStats(s *Stats) {
	s.Nodes++
	s.MaxCenter = mathutil.Max(s.MaxCenter, len(n.center))

	if n.left != nil {
		n.left.collectStats(s)
	}

	if n.right != nil {
		n.right.collectStats(s)
	}
}
