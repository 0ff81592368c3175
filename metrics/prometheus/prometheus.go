// Package prometheus provides a gfkit.MetricsCollector that exports kernel
// call counts, latencies and run-length cache effectiveness to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := gfprom.New(reg)
//	k := gfkit.New(gfkit.WithMetricsCollector(c))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/gfkit"
	"github.com/hupe1980/gfkit/isin"
)

const namespace = "gfkit"

// Kernel label values.
const (
	KernelSetFlags = "set_flags"
	KernelNotIsIn  = "not_isin"
	KernelSubtract = "subtract_exclusive"
)

// Collector implements gfkit.MetricsCollector.
type Collector struct {
	calls    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	items    *prometheus.CounterVec
	searches prometheus.Counter
	reused   prometheus.Counter
}

var _ gfkit.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Kernel calls by kernel and status",
		}, []string{"kernel", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Latency of kernel calls",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kernel"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Indices, rows or iterations processed by accepted calls",
		}, []string{"kernel"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "not_isin_searches_total",
			Help:      "Not-isin rows resolved by a lookup",
		}),
		reused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "not_isin_reused_total",
			Help:      "Not-isin rows copied from the run-length cache",
		}),
	}

	for _, col := range []prometheus.Collector{c.calls, c.latency, c.items, c.searches, c.reused} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer) *Collector {
	c, err := New(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordSetFlags implements gfkit.MetricsCollector.
func (c *Collector) RecordSetFlags(n int, d time.Duration, err error) {
	c.observe(KernelSetFlags, n, d, err)
}

// RecordNotIsIn implements gfkit.MetricsCollector.
func (c *Collector) RecordNotIsIn(st isin.Stats, d time.Duration, err error) {
	c.observe(KernelNotIsIn, st.Rows, d, err)
	if err == nil {
		c.searches.Add(float64(st.Searches))
		c.reused.Add(float64(st.Reused))
	}
}

// RecordSubtract implements gfkit.MetricsCollector.
func (c *Collector) RecordSubtract(count int, d time.Duration, err error) {
	c.observe(KernelSubtract, count, d, err)
}

func (c *Collector) observe(kernel string, n int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.calls.WithLabelValues(kernel, status).Inc()
	c.latency.WithLabelValues(kernel).Observe(d.Seconds())
	if err == nil {
		c.items.WithLabelValues(kernel).Add(float64(n))
	}
}
