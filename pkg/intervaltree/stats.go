package intervaltree

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of the tree's shape.
type Stats struct {
	Entries   int // Stored entries across all center lists.
	Nodes     int // Partition nodes in the graph.
	Height    int // Levels from root to deepest node; 0 when empty.
	MaxCenter int // Size of the largest single center list.
}

// Stats returns the current shape snapshot. Cost is proportional to the
// number of nodes.
func (t *Tree[T, V]) Stats() Stats {
	s := Stats{Entries: t.size}

	if t.root != nil {
		s.Height = t.root.height()
		t.root.collectStats(&s)
	}

	return s
}

// String renders the snapshot for logs and reports.
func (s Stats) String() string {
	return fmt.Sprintf("%s entries in %s nodes (height %d, max center list %d)",
		humanize.Comma(int64(s.Entries)), humanize.Comma(int64(s.Nodes)), s.Height, s.MaxCenter)
}
