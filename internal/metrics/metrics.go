package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	timeouts        int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type aggregationStats struct {
	runs            int
	lastEvents      int
	lastClutch      int
	lastDuration    time.Duration
	lastUpstreamErr int
}

// Recorder captures lightweight, in-memory metrics about upstream calls and aggregations.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*feedStats
	agg   aggregationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*feedStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts one call against an upstream feed and stores its latency.
// outcome is one of OutcomeOK, OutcomeError, OutcomeTimeout.
func (r *Recorder) RecordUpstreamCall(feed string, duration time.Duration, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(feed)
	stats.calls++
	stats.lastCallLatency = duration
	switch outcome {
	case OutcomeError:
		stats.errors++
	case OutcomeTimeout:
		stats.errors++
		stats.timeouts++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(feed, duration, outcome)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(feed string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(feed)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(feed, retryAfter)
	}
}

// RecordAggregation tracks one completed highlight aggregation.
func (r *Recorder) RecordAggregation(duration time.Duration, events, clutchEvents, upstreamErrors int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.agg.runs++
	r.agg.lastEvents = events
	r.agg.lastClutch = clutchEvents
	r.agg.lastDuration = duration
	r.agg.lastUpstreamErr = upstreamErrors
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAggregation(duration, events, clutchEvents, upstreamErrors)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one feed.
type Snapshot struct {
	Calls           int
	Errors          int
	Timeouts        int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the feed.
func (r *Recorder) Snapshot(feed string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[feed]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Timeouts:        stats.timeouts,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// UpstreamCalls returns the total calls recorded for a feed.
func (r *Recorder) UpstreamCalls(feed string) int {
	return r.Snapshot(feed).Calls
}

// UpstreamErrors returns the failed calls (timeouts included) recorded for a feed.
func (r *Recorder) UpstreamErrors(feed string) int {
	return r.Snapshot(feed).Errors
}

// UpstreamTimeouts returns the timed-out calls recorded for a feed.
func (r *Recorder) UpstreamTimeouts(feed string) int {
	return r.Snapshot(feed).Timeouts
}

// RateLimitHits returns the number of rate limit events seen for a feed.
func (r *Recorder) RateLimitHits(feed string) int {
	return r.Snapshot(feed).RateLimitHits
}

// AggregationSnapshot is a copy of the aggregation counters.
type AggregationSnapshot struct {
	Runs                int
	LastEvents          int
	LastClutchEvents    int
	LastDuration        time.Duration
	LastUpstreamFailure int
}

// Aggregations returns a copy of the aggregation counters.
func (r *Recorder) Aggregations() AggregationSnapshot {
	if r == nil {
		return AggregationSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return AggregationSnapshot{
		Runs:                r.agg.runs,
		LastEvents:          r.agg.lastEvents,
		LastClutchEvents:    r.agg.lastClutch,
		LastDuration:        r.agg.lastDuration,
		LastUpstreamFailure: r.agg.lastUpstreamErr,
	}
}

func (r *Recorder) ensureStatsLocked(feed string) *feedStats {
	stats, ok := r.stats[feed]
	if !ok {
		stats = &feedStats{}
		r.stats[feed] = stats
	}
	return stats
}
