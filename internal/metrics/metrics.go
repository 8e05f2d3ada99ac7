package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	errorsByKind    map[string]int
	lastCallLatency time.Duration
}

type pageStats struct {
	loads        int
	failures     int
	items        int
	droppedItems int
}

// Recorder captures lightweight, in-memory metrics about catalogue fetches and page loads,
// mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	pages pageStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordFetch counts one resource fetch against source. errKind is empty on success.
func (r *Recorder) RecordFetch(source string, duration time.Duration, errKind string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(source)
	stats.calls++
	stats.lastCallLatency = duration
	if errKind != "" {
		stats.errors++
		stats.errorsByKind[errKind]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(source, duration, errKind)
	}
}

// RecordPageLoad tracks a page aggregation: how many entries survived and how many were dropped.
func (r *Recorder) RecordPageLoad(items, dropped int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.pages.loads++
	if err != nil {
		r.pages.failures++
	}
	r.pages.items += items
	r.pages.droppedItems += dropped
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPageLoad(items, dropped, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchCalls returns the total fetches recorded for a source.
func (r *Recorder) FetchCalls(source string) int {
	return r.Snapshot(source).Calls
}

// FetchErrors returns the total failed fetches recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastCallLatency returns the last recorded latency for a source.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	Calls           int
	Errors          int
	ErrorsByKind    map[string]int
	LastCallLatency time.Duration
}

// PageSnapshot is a copy of the page aggregation counters.
type PageSnapshot struct {
	Loads        int
	Failures     int
	Items        int
	DroppedItems int
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{ErrorsByKind: map[string]int{}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{ErrorsByKind: map[string]int{}}
	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return snap
	}
	snap.Calls = stats.calls
	snap.Errors = stats.errors
	snap.LastCallLatency = stats.lastCallLatency
	for kind, n := range stats.errorsByKind {
		snap.ErrorsByKind[kind] = n
	}
	return snap
}

// Pages returns the page aggregation counters.
func (r *Recorder) Pages() PageSnapshot {
	if r == nil {
		return PageSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return PageSnapshot{
		Loads:        r.pages.loads,
		Failures:     r.pages.failures,
		Items:        r.pages.items,
		DroppedItems: r.pages.droppedItems,
	}
}

func (r *Recorder) ensureStatsLocked(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{errorsByKind: make(map[string]int)}
		r.stats[source] = stats
	}
	return stats
}
