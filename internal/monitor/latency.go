package monitor

import (
	"math"
	"sort"
	"sync"
	"time"
)

// maxSamples bounds the samples kept for percentiles; min, max and mean stay exact
const maxSamples = 10000

// Latency records request durations
type Latency struct {
	mu      sync.Mutex
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples []time.Duration
}

// Record adds one measurement
func (l *Latency) Record(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 || d < l.min {
		l.min = d
	}
	if d > l.max {
		l.max = d
	}
	l.count++
	l.total += d

	if len(l.samples) < maxSamples {
		l.samples = append(l.samples, d)
	}
}

// Count returns the number of measurements
func (l *Latency) Count() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Stats returns min, mean, max and the 95th percentile; all zero when empty
func (l *Latency) Stats() (minD, mean, maxD, p95 time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		return 0, 0, 0, 0
	}
	return l.min, l.total / time.Duration(l.count), l.max, percentile(l.samples, 95)
}

// percentile uses the nearest-rank method
func percentile(samples []time.Duration, p float64) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
