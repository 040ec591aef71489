// Package intervaltree provides a generic centerpoint interval tree answering
// stabbing queries: given a point on the coordinate line, return every stored
// half-open interval [start, end) — with its associated value — that contains
// the point. The tree acts as a multi-map keyed by possibly overlapping,
// possibly duplicate intervals.
//
// Each node partitions its entries around a center coordinate and keeps the
// entries overlapping that coordinate in two sorted orders (ascending by
// start and ascending by end). A query therefore descends along a single
// child branch per level and scans only the true hits at each node, instead
// of the node's full entry list.
//
// Build constructs the node graph in O(n log n), balanced by the coordinate
// distribution of the input. Insert is deliberately non-rebalancing: it
// routes the new entry through the existing node shape in O(depth) and never
// restructures, so pathological insertion orders on an empty tree can produce
// unbalanced depth. The intended usage is a bulk Build for the large dataset
// followed by small incremental Inserts; this trade-off is part of the
// contract, not an oversight.
//
// The tree performs no synchronization and no I/O. Concurrent mutation, or
// reads concurrent with mutation, require external locking.
package intervaltree

import "fmt"

// Tree is a centerpoint interval tree storing values of type V keyed by
// half-open intervals over coordinates of type T. The zero value is an empty
// tree ready for use.
type Tree[T Real, V any] struct {
	root *node[T, V]
	size int
}

// New creates an empty interval tree.
func New[T Real, V any]() *Tree[T, V] {
	return &Tree[T, V]{}
}

// NewFromEntries creates a tree containing the given entries.
// Equivalent to New followed by Build.
func NewFromEntries[T Real, V any](entries []Entry[T, V]) (*Tree[T, V], error) {
	t := New[T, V]()
	if err := t.Build(entries); err != nil {
		return nil, err
	}

	return t, nil
}

// Build replaces the tree's contents with the given entries, recursively
// partitioning them around per-level center coordinates. Every interval must
// have positive length; on ErrInvalidInterval the tree keeps its previous
// contents. Building from an empty slice is equivalent to Clear.
func (t *Tree[T, V]) Build(entries []Entry[T, V]) error {
	for i := range entries {
		if !entries[i].Interval.Valid() {
			return fmt.Errorf("build entry %d %s: %w", i, entries[i].Interval, ErrInvalidInterval)
		}
	}

	if len(entries) == 0 {
		t.Clear()

		return nil
	}

	t.root = buildNode(entries)
	t.size = len(entries)

	return nil
}

// Insert adds one entry for the half-open interval [start, end) without
// restructuring existing nodes. Cost is proportional to the tree depth plus
// the size of the center list the entry lands in.
func (t *Tree[T, V]) Insert(start, end T, value V) error {
	iv, err := NewInterval(start, end)
	if err != nil {
		return fmt.Errorf("insert [%v, %v): %w", start, end, err)
	}

	if t.root == nil {
		t.root = newLeaf(iv, value)
	} else {
		t.root.insert(iv, value)
	}

	t.size++

	return nil
}

// Query returns every entry whose interval contains point under half-open
// semantics (start <= point < end). The returned slice is owned by the caller
// and fully independent of the tree. Result order is an artifact of the
// traversal; callers must not rely on it. An empty tree yields nil.
func (t *Tree[T, V]) Query(point T) []Entry[T, V] {
	if t.root == nil {
		return nil
	}

	var results []Entry[T, V]

	t.root.query(point, &results)

	return results
}

// QueryRange returns every entry whose interval overlaps the half-open range
// [start, end). It returns ErrInvalidInterval when end <= start. Result order
// is unspecified, as for Query.
func (t *Tree[T, V]) QueryRange(start, end T) ([]Entry[T, V], error) {
	if _, err := NewInterval(start, end); err != nil {
		return nil, fmt.Errorf("query range [%v, %v): %w", start, end, err)
	}

	if t.root == nil {
		return nil, nil
	}

	var results []Entry[T, V]

	t.root.queryRange(start, end, &results)

	return results, nil
}

// Clear removes all entries, resetting the tree to its initial empty state.
func (t *Tree[T, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Len returns the number of stored entries.
func (t *Tree[T, V]) Len() int {
	return t.size
}

// Height returns the number of node levels, 0 for an empty tree. Because
// Insert never rebalances, Height exposes the shape cost of incremental
// insertion orders.
func (t *Tree[T, V]) Height() int {
	if t.root == nil {
		return 0
	}

	return t.root.height()
}

// Entries returns a snapshot of all stored entries in traversal order.
func (t *Tree[T, V]) Entries() []Entry[T, V] {
	if t.root == nil {
		return nil
	}

	results := make([]Entry[T, V], 0, t.size)
	t.root.walk(&results)

	return results
}

// Clone returns a deep copy: every node, center list, and index permutation
// in the graph is duplicated, so mutating either tree never affects the
// other. Assigning a Tree value directly would alias the root instead; use
// Clone (or Move) to duplicate or transfer ownership.
func (t *Tree[T, V]) Clone() *Tree[T, V] {
	c := &Tree[T, V]{size: t.size}

	if t.root != nil {
		c.root = t.root.clone()
	}

	return c
}

// Move transfers the tree's contents to a new tree in O(1) and leaves the
// receiver equal to a freshly constructed empty tree.
func (t *Tree[T, V]) Move() *Tree[T, V] {
	moved := &Tree[T, V]{root: t.root, size: t.size}
	t.Clear()

	return moved
}
