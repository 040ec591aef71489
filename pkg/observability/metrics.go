// Package observability layers OTel metrics over interval tree operations.
//
// The core intervaltree package carries no instrumentation and performs no
// I/O; wrap a tree in Instrumented (or drive TreeMetrics directly) to opt in,
// and serve the scrape endpoint from PrometheusHandler.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

const (
	metricQueriesTotal  = "intervaltree.queries.total"
	metricQueryHits     = "intervaltree.query.hits"
	metricQueryDuration = "intervaltree.query.duration.seconds"
	metricInsertsTotal  = "intervaltree.inserts.total"
	metricBuildsTotal   = "intervaltree.builds.total"
	metricEntries       = "intervaltree.entries"
)

// durationBucketBoundaries covers 100ns to 100ms: stabbing queries are
// in-memory traversals, far below service-level request buckets.
var durationBucketBoundaries = []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1}

// hitBucketBoundaries tracks how many entries each query matched.
var hitBucketBoundaries = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000}

// TreeMetrics holds the OTel instruments for interval tree operations.
type TreeMetrics struct {
	queriesTotal  metric.Int64Counter
	queryHits     metric.Int64Histogram
	queryDuration metric.Float64Histogram
	insertsTotal  metric.Int64Counter
	buildsTotal   metric.Int64Counter
	entries       metric.Int64UpDownCounter
}

// NewTreeMetrics creates tree metric instruments from the given meter.
func NewTreeMetrics(mt metric.Meter) (*TreeMetrics, error) {
	b := newMetricBuilder(mt)

	tm := &TreeMetrics{
		queriesTotal:  b.counter(metricQueriesTotal, "Total number of stabbing and range queries", "{query}"),
		queryHits:     b.intHistogram(metricQueryHits, "Entries matched per query", "{entry}", hitBucketBoundaries...),
		queryDuration: b.histogram(metricQueryDuration, "Query duration in seconds", "s", durationBucketBoundaries...),
		insertsTotal:  b.counter(metricInsertsTotal, "Total number of single-entry inserts", "{entry}"),
		buildsTotal:   b.counter(metricBuildsTotal, "Total number of bulk builds", "{build}"),
		entries:       b.upDownCounter(metricEntries, "Entries currently stored in the tree", "{entry}"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return tm, nil
}

// RecordQuery records one completed query with its hit count and duration.
func (tm *TreeMetrics) RecordQuery(ctx context.Context, hits int, duration time.Duration) {
	tm.queriesTotal.Add(ctx, 1)
	tm.queryHits.Record(ctx, int64(hits))
	tm.queryDuration.Record(ctx, duration.Seconds())
}

// RecordInsert records one inserted entry.
func (tm *TreeMetrics) RecordInsert(ctx context.Context) {
	tm.insertsTotal.Add(ctx, 1)
	tm.entries.Add(ctx, 1)
}

// RecordBuild records a bulk build that replaced previous entries with count
// new ones.
func (tm *TreeMetrics) RecordBuild(ctx context.Context, previous, count int) {
	tm.buildsTotal.Add(ctx, 1)
	tm.entries.Add(ctx, int64(count)-int64(previous))
}

// RecordClear records the removal of all previous entries.
func (tm *TreeMetrics) RecordClear(ctx context.Context, previous int) {
	tm.entries.Add(ctx, -int64(previous))
}
