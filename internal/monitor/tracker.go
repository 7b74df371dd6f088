package monitor

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
)

// LabelCount is the number of headlines assigned one label
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Summary is a point-in-time view of a classification run
type Summary struct {
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Classified int64         `json:"classified"`
	Failed     int64         `json:"failed"`
	Skipped    int64         `json:"skipped"`
	Labels     []LabelCount  `json:"labels"`
	MinLatency time.Duration `json:"min_latency_ns"`
	AvgLatency time.Duration `json:"avg_latency_ns"`
	MaxLatency time.Duration `json:"max_latency_ns"`
	P95Latency time.Duration `json:"p95_latency_ns"`
}

// Total returns the number of headlines seen
func (s Summary) Total() int64 {
	return s.Classified + s.Failed + s.Skipped
}

// Tracker records the outcome of every headline in a batch or watch run
type Tracker struct {
	started time.Time
	now     func() time.Time

	failed  atomic.Int64
	skipped atomic.Int64
	latency Latency

	mu     sync.Mutex
	labels map[string]int64
}

// NewTracker creates a tracker starting now
func NewTracker() *Tracker {
	return newTrackerWithClock(time.Now)
}

func newTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		started: now(),
		now:     now,
		labels:  make(map[string]int64),
	}
}

// RecordResult records a successful prediction
func (t *Tracker) RecordResult(result *classify.Result) {
	if result == nil || result.Prediction == nil {
		t.failed.Add(1)
		return
	}
	t.latency.Record(result.Duration)

	t.mu.Lock()
	t.labels[result.Prediction.Label]++
	t.mu.Unlock()
}

// RecordError records a headline that did not produce a prediction. Local
// validation failures count as skipped since no request was made.
func (t *Tracker) RecordError(err error) {
	if classify.IsLocal(err) {
		t.skipped.Add(1)
		return
	}
	t.failed.Add(1)
}

// Summary returns the current totals. Labels are ordered by count, then name.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	labels := make([]LabelCount, 0, len(t.labels))
	var classified int64
	for label, count := range t.labels {
		labels = append(labels, LabelCount{Label: label, Count: count})
		classified += count
	}
	t.mu.Unlock()

	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Count != labels[j].Count {
			return labels[i].Count > labels[j].Count
		}
		return labels[i].Label < labels[j].Label
	})

	minLatency, avgLatency, maxLatency, p95Latency := t.latency.Stats()

	return Summary{
		StartedAt:  t.started,
		Elapsed:    t.now().Sub(t.started),
		Classified: classified,
		Failed:     t.failed.Load(),
		Skipped:    t.skipped.Load(),
		Labels:     labels,
		MinLatency: minLatency,
		AvgLatency: avgLatency,
		MaxLatency: maxLatency,
		P95Latency: p95Latency,
	}
}
