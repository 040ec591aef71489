package observability

import (
	"context"
	"time"

	"github.com/ShnitzelKiller/intervaltree/pkg/intervaltree"
)

// Instrumented wraps an interval tree and records metrics for every
// operation. It adds no synchronization: the wrapped tree's single-writer
// discipline still applies.
type Instrumented[T intervaltree.Real, V any] struct {
	tree    *intervaltree.Tree[T, V]
	metrics *TreeMetrics
}

// NewInstrumented wraps tree with the given metrics.
func NewInstrumented[T intervaltree.Real, V any](tree *intervaltree.Tree[T, V], metrics *TreeMetrics) *Instrumented[T, V] {
	return &Instrumented[T, V]{tree: tree, metrics: metrics}
}

// Tree returns the wrapped tree for direct, unrecorded access.
func (it *Instrumented[T, V]) Tree() *intervaltree.Tree[T, V] {
	return it.tree
}

// Build replaces the tree's contents and records the build.
func (it *Instrumented[T, V]) Build(ctx context.Context, entries []intervaltree.Entry[T, V]) error {
	previous := it.tree.Len()

	if err := it.tree.Build(entries); err != nil {
		return err
	}

	it.metrics.RecordBuild(ctx, previous, len(entries))

	return nil
}

// Insert adds one entry and records the insert.
func (it *Instrumented[T, V]) Insert(ctx context.Context, start, end T, value V) error {
	if err := it.tree.Insert(start, end, value); err != nil {
		return err
	}

	it.metrics.RecordInsert(ctx)

	return nil
}

// Query runs a stabbing query and records its hit count and duration.
func (it *Instrumented[T, V]) Query(ctx context.Context, point T) []intervaltree.Entry[T, V] {
	begin := time.Now()
	results := it.tree.Query(point)
	it.metrics.RecordQuery(ctx, len(results), time.Since(begin))

	return results
}

// QueryRange runs an overlap query and records its hit count and duration.
func (it *Instrumented[T, V]) QueryRange(ctx context.Context, start, end T) ([]intervaltree.Entry[T, V], error) {
	begin := time.Now()

	results, err := it.tree.QueryRange(start, end)
	if err != nil {
		return nil, err
	}

	it.metrics.RecordQuery(ctx, len(results), time.Since(begin))

	return results, nil
}

// Clear empties the tree and records the removal.
func (it *Instrumented[T, V]) Clear(ctx context.Context) {
	previous := it.tree.Len()
	it.tree.Clear()
	it.metrics.RecordClear(ctx, previous)
}
