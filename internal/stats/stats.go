package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
	inputBytes int64
}

// Snapshot is a point-in-time aggregate of recent conversions.
type Snapshot struct {
	Count      int     `json:"count"`
	InputBytes int64   `json:"input_bytes"`
	MinMs      int64   `json:"min_ms"`
	MaxMs      int64   `json:"max_ms"`
	AvgMs      float64 `json:"avg_ms"`
	P50Ms      float64 `json:"p50_ms"`
	P95Ms      float64 `json:"p95_ms"`
	P99Ms      float64 `json:"p99_ms"`
}

// ConvertStats tracks conversion latencies and volume within a rolling
// window.
type ConvertStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func New(maxAge time.Duration) *ConvertStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &ConvertStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one conversion to the window.
func (s *ConvertStats) Record(duration time.Duration, inputBytes int64) {
	ms := duration.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{
		timestamp:  now,
		durationMs: ms,
		inputBytes: inputBytes,
	})
}

// Snapshot aggregates the current window.
func (s *ConvertStats) Snapshot() Snapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	snap := Snapshot{Count: len(s.samples)}
	if snap.Count == 0 {
		return snap
	}

	durations := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		durations = append(durations, sm.durationMs)
		sum += sm.durationMs
		snap.InputBytes += sm.inputBytes
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	snap.MinMs = durations[0]
	snap.MaxMs = durations[len(durations)-1]
	snap.AvgMs = float64(sum) / float64(len(durations))
	snap.P50Ms = percentile(durations, 0.50)
	snap.P95Ms = percentile(durations, 0.95)
	snap.P99Ms = percentile(durations, 0.99)
	return snap
}

func (s *ConvertStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	keep := s.samples[:0]
	for _, sm := range s.samples {
		if sm.timestamp.After(cutoff) {
			keep = append(keep, sm)
		}
	}
	s.samples = keep
}

// percentile does linear interpolation between the two nearest ranks.
func percentile(sorted []int64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return float64(sorted[0])
	}
	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[hi]-sorted[lo])
}
