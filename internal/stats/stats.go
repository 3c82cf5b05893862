package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	at time.Time
	d  time.Duration
}

// Snapshot aggregates the build latencies currently inside the window.
// Durations are reported as fractional milliseconds so sub-millisecond
// builds stay visible.
type Snapshot struct {
	Count int     `json:"count"`
	MinMs float64 `json:"min_ms"`
	MaxMs float64 `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Recorder keeps tree build latencies for a rolling window.
type Recorder struct {
	mu      sync.Mutex
	samples []sample
	window  time.Duration
}

func NewRecorder(window time.Duration) *Recorder {
	if window <= 0 {
		window = time.Hour
	}
	return &Recorder{
		samples: make([]sample, 0, 256),
		window:  window,
	}
}

// Observe adds one build duration. Negative durations count as zero.
func (r *Recorder) Observe(d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.expireLocked(now)
	r.samples = append(r.samples, sample{at: now, d: d})
}

func (r *Recorder) Snapshot() Snapshot {
	now := time.Now()

	r.mu.Lock()
	r.expireLocked(now)
	sorted := make([]time.Duration, len(r.samples))
	for i, sm := range r.samples {
		sorted[i] = sm.d
	}
	r.mu.Unlock()

	if len(sorted) == 0 {
		return Snapshot{}
	}
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	return Snapshot{
		Count: len(sorted),
		MinMs: millis(sorted[0]),
		MaxMs: millis(sorted[len(sorted)-1]),
		AvgMs: millis(total) / float64(len(sorted)),
		P50Ms: percentile(sorted, 50),
		P95Ms: percentile(sorted, 95),
		P99Ms: percentile(sorted, 99),
	}
}

// expireLocked drops samples older than the window. Samples are appended
// in time order, so the expired ones form a prefix.
func (r *Recorder) expireLocked(now time.Time) {
	cutoff := now.Add(-r.window)
	n := 0
	for n < len(r.samples) && r.samples[n].at.Before(cutoff) {
		n++
	}
	if n > 0 {
		r.samples = slices.Delete(r.samples, 0, n)
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// percentile interpolates linearly between the two nearest ranks of sorted
// and returns milliseconds.
func percentile(sorted []time.Duration, pct float64) float64 {
	last := len(sorted) - 1
	switch {
	case last < 0:
		return 0
	case pct <= 0:
		return millis(sorted[0])
	case pct >= 100:
		return millis(sorted[last])
	}

	rank := float64(last) * pct / 100
	lower := int(rank)
	if lower >= last {
		return millis(sorted[last])
	}
	lo, hi := millis(sorted[lower]), millis(sorted[lower+1])
	return lo + (hi-lo)*(rank-float64(lower))
}
