package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder keeps in-memory counters for upstream fetches and chart renders,
// mirroring them into OpenTelemetry instruments when Setup enabled them.
type Recorder struct {
	mu           sync.Mutex
	upstream     map[string]*upstreamStats
	renders      map[string]int
	renderErrors map[string]int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstream:     make(map[string]*upstreamStats),
		renders:      make(map[string]int),
		renderErrors: make(map[string]int),
		otel:         otel,
	}
}

// RecordUpstreamFetch counts one GET against an upstream endpoint
// (for example "legacy.feed" or "edge.landing") and stores its latency.
func (r *Recorder) RecordUpstreamFetch(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.upstream[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.upstream[endpoint] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamFetch(endpoint, duration, err)
	}
}

// RecordChartRender counts a shot chart render attempt for a data source.
func (r *Recorder) RecordChartRender(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.renders[source]++
	if err != nil {
		r.renderErrors[source]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordChartRender(source, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the counters recorded for one upstream endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.upstream[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// UpstreamCalls returns the total fetches recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the failed fetches recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// ChartRenders returns total and failed renders for a source.
func (r *Recorder) ChartRenders(source string) (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders[source], r.renderErrors[source]
}
