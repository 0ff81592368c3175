package gfkit

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/gfkit/isin"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordSetFlags is called after each SetFlags call.
	// n is the number of indices applied, err is nil if successful.
	RecordSetFlags(n int, duration time.Duration, err error)

	// RecordNotIsIn is called after each NotIsIn call.
	// stats is zero when the input was rejected.
	RecordNotIsIn(stats isin.Stats, duration time.Duration, err error)

	// RecordSubtract is called after each SubtractExclusive call.
	// count is the number of (node, parent) iterations requested.
	RecordSubtract(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSetFlags(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordNotIsIn(isin.Stats, time.Duration, error) {}
func (NoopMetricsCollector) RecordSubtract(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetFlagsCount      atomic.Int64
	SetFlagsErrors     atomic.Int64
	FlagsWritten       atomic.Int64
	NotIsInCount       atomic.Int64
	NotIsInErrors      atomic.Int64
	NotIsInRows        atomic.Int64
	NotIsInSearches    atomic.Int64
	NotIsInReused      atomic.Int64
	NotIsInTotalNanos  atomic.Int64
	SubtractCount      atomic.Int64
	SubtractErrors     atomic.Int64
	SubtractIterations atomic.Int64
	SubtractTotalNanos atomic.Int64
}

// RecordSetFlags implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetFlags(n int, duration time.Duration, err error) {
	b.SetFlagsCount.Add(1)
	if err != nil {
		b.SetFlagsErrors.Add(1)
		return
	}
	b.FlagsWritten.Add(int64(n))
}

// RecordNotIsIn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNotIsIn(st isin.Stats, duration time.Duration, err error) {
	b.NotIsInCount.Add(1)
	b.NotIsInTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NotIsInErrors.Add(1)
		return
	}
	b.NotIsInRows.Add(int64(st.Rows))
	b.NotIsInSearches.Add(int64(st.Searches))
	b.NotIsInReused.Add(int64(st.Reused))
}

// RecordSubtract implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubtract(count int, duration time.Duration, err error) {
	b.SubtractCount.Add(1)
	b.SubtractTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SubtractErrors.Add(1)
		return
	}
	b.SubtractIterations.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetFlagsCount:      b.SetFlagsCount.Load(),
		SetFlagsErrors:     b.SetFlagsErrors.Load(),
		FlagsWritten:       b.FlagsWritten.Load(),
		NotIsInCount:       b.NotIsInCount.Load(),
		NotIsInErrors:      b.NotIsInErrors.Load(),
		NotIsInRows:        b.NotIsInRows.Load(),
		NotIsInSearches:    b.NotIsInSearches.Load(),
		NotIsInReused:      b.NotIsInReused.Load(),
		NotIsInAvgNanos:    avg(b.NotIsInTotalNanos.Load(), b.NotIsInCount.Load()),
		SubtractCount:      b.SubtractCount.Load(),
		SubtractErrors:     b.SubtractErrors.Load(),
		SubtractIterations: b.SubtractIterations.Load(),
		SubtractAvgNanos:   avg(b.SubtractTotalNanos.Load(), b.SubtractCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetFlagsCount      int64
	SetFlagsErrors     int64
	FlagsWritten       int64
	NotIsInCount       int64
	NotIsInErrors      int64
	NotIsInRows        int64
	NotIsInSearches    int64
	NotIsInReused      int64
	NotIsInAvgNanos    int64
	SubtractCount      int64
	SubtractErrors     int64
	SubtractIterations int64
	SubtractAvgNanos   int64
}

// ReuseRatio returns the fraction of not-isin rows answered from the
// run-length cache, or 0 if no rows were seen.
func (s BasicMetricsStats) ReuseRatio() float64 {
	if s.NotIsInRows == 0 {
		return 0
	}
	return float64(s.NotIsInReused) / float64(s.NotIsInRows)
}
