package intervaltree_test

import (
	"testing"

	"github.com/ShnitzelKiller/intervaltree/pkg/intervaltree"
)

// Benchmark constants.
const (
	benchIntervalCount = 10000
	benchSpacing       = 10
	benchWidth         = 15
	benchQueryPoint    = 50005
	benchRangeLow      = 50000
	benchRangeHigh     = 51000
)

// benchEntries builds overlapping intervals [i*10, i*10+15) covering the
// coordinate line with a constant overlap factor.
func benchEntries() []intervaltree.Entry[float64, int] {
	entries := make([]intervaltree.Entry[float64, int], 0, benchIntervalCount)
	for i := range benchIntervalCount {
		low := float64(i * benchSpacing)

		entries = append(entries, intervaltree.Entry[float64, int]{
			Interval: intervaltree.Interval[float64]{Start: low, End: low + benchWidth},
			Value:    i,
		})
	}

	return entries
}

// newBenchTree bulk-builds the benchmark dataset.
func newBenchTree(b *testing.B) *intervaltree.Tree[float64, int] {
	b.Helper()

	tree, err := intervaltree.NewFromEntries(benchEntries())
	if err != nil {
		b.Fatal(err)
	}

	return tree
}

// BenchmarkBuild benchmarks bulk construction.
func BenchmarkBuild(b *testing.B) {
	entries := benchEntries()
	tree := intervaltree.New[float64, int]()

	b.ResetTimer()

	for range b.N {
		if err := tree.Build(entries); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInsert benchmarks incremental insertion on top of a built tree.
func BenchmarkInsert(b *testing.B) {
	tree := newBenchTree(b)

	b.ResetTimer()

	for i := range b.N {
		low := float64(i % (benchIntervalCount * benchSpacing))
		if err := tree.Insert(low, low+benchWidth, i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQuery benchmarks stabbing queries.
func BenchmarkQuery(b *testing.B) {
	tree := newBenchTree(b)

	b.ResetTimer()

	for range b.N {
		tree.Query(benchQueryPoint)
	}
}

// BenchmarkQueryRange benchmarks overlap queries.
func BenchmarkQueryRange(b *testing.B) {
	tree := newBenchTree(b)

	b.ResetTimer()

	for range b.N {
		if _, err := tree.QueryRange(benchRangeLow, benchRangeHigh); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClone benchmarks deep copying of the full node graph.
func BenchmarkClone(b *testing.B) {
	tree := newBenchTree(b)

	b.ResetTimer()

	for range b.N {
		tree.Clone()
	}
}
