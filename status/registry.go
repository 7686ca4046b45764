// Package status collects generation counters and timings for display in the
// command line tools and the viewer.
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric names recorded by the house generator
const (
	Generations = "house.generations"
	Failures    = "house.failures"
	Rects       = "house.rects"
	LastSeed    = "house.last_seed"
	CacheHits   = "mesh.cache_hits"
	CacheMisses = "mesh.cache_misses"
	CacheLen    = "mesh.cache_len"
	LastMillis  = "house.last_ms"
	TotalMillis = "house.total_ms"
)

// Registry groups counters and gauges by name
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: newMetricMap[atomic.Int64](),
		Gauges:   newMetricMap[Gauge](),
	}
}

// Counter is shorthand for r.Counters.Get(name)
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge is shorthand for r.Gauges.Get(name)
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// Len is the number of registered metrics of every kind
func (r *Registry) Len() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// Lines renders every metric as "name value", counters first, each group in
// name order
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.Len())
	r.Counters.Range(func(name string, v *atomic.Int64) {
		out = append(out, name+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Gauges.Range(func(name string, v *Gauge) {
		out = append(out, name+" "+strconv.FormatFloat(v.Get(), 'f', 3, 64))
	})
	return out
}

// Summary is a single status-bar line of the most watched metrics
func (r *Registry) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d", r.Counter(Generations).Load())
	if n := r.Counter(Failures).Load(); n > 0 {
		fmt.Fprintf(&b, " fail %d", n)
	}
	fmt.Fprintf(&b, "  cache %d/%d", r.Counter(CacheHits).Load(), r.Counter(CacheMisses).Load())
	fmt.Fprintf(&b, "  %.1fms", r.Gauge(LastMillis).Get())
	return b.String()
}
