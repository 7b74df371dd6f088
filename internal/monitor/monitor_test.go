package monitor

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
)

func TestLatency(t *testing.T) {
	var l Latency

	if minD, mean, maxD, p95 := l.Stats(); minD != 0 || mean != 0 || maxD != 0 || p95 != 0 {
		t.Errorf("Expected zero stats before any record, got %v %v %v %v", minD, mean, maxD, p95)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(ms int) {
			defer wg.Done()
			l.Record(time.Duration(ms) * time.Millisecond)
		}(i * 10)
	}
	wg.Wait()

	if l.Count() != 20 {
		t.Errorf("Expected count 20, got %d", l.Count())
	}

	minD, mean, maxD, p95 := l.Stats()
	if minD != 10*time.Millisecond {
		t.Errorf("Expected min 10ms, got %v", minD)
	}
	if maxD != 200*time.Millisecond {
		t.Errorf("Expected max 200ms, got %v", maxD)
	}
	if mean != 105*time.Millisecond {
		t.Errorf("Expected mean 105ms, got %v", mean)
	}
	if p95 != 190*time.Millisecond {
		t.Errorf("Expected p95 190ms, got %v", p95)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name    string
		samples []time.Duration
		p       float64
		want    time.Duration
	}{
		{"empty", nil, 95, 0},
		{"single", []time.Duration{7}, 95, 7},
		{"unsorted median", []time.Duration{5, 1, 3, 2, 4}, 50, 3},
		{"lowest rank", []time.Duration{5, 1, 3}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentile(tt.samples, tt.p); got != tt.want {
				t.Errorf("percentile(%v, %v) = %v, want %v", tt.samples, tt.p, got, tt.want)
			}
		})
	}
}

func result(label string, d time.Duration) *classify.Result {
	return &classify.Result{
		Prediction: &classify.Prediction{Label: label, Confidence: 0.9},
		Duration:   d,
	}
}

func newTestTracker() *Tracker {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	return newTrackerWithClock(func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(1500 * time.Millisecond)
	})
}

func TestTracker_Summary(t *testing.T) {
	tracker := newTestTracker()

	tracker.RecordResult(result("POLITICS", 20*time.Millisecond))
	tracker.RecordResult(result("WELLNESS", 40*time.Millisecond))
	tracker.RecordResult(result("POLITICS", 30*time.Millisecond))
	tracker.RecordResult(result("ENTERTAINMENT", 30*time.Millisecond))
	tracker.RecordError(classify.NewError(classify.KindEmptyInput, classify.MsgEmptyInput))
	tracker.RecordError(errors.New("connection refused"))
	tracker.RecordResult(nil)

	s := tracker.Summary()

	if s.Classified != 4 {
		t.Errorf("Expected 4 classified, got %d", s.Classified)
	}
	if s.Failed != 2 {
		t.Errorf("Expected 2 failed, got %d", s.Failed)
	}
	if s.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", s.Skipped)
	}
	if s.Total() != 7 {
		t.Errorf("Expected total 7, got %d", s.Total())
	}
	if s.Elapsed != 1500*time.Millisecond {
		t.Errorf("Expected elapsed 1.5s, got %v", s.Elapsed)
	}

	want := []LabelCount{{"POLITICS", 2}, {"ENTERTAINMENT", 1}, {"WELLNESS", 1}}
	if len(s.Labels) != len(want) {
		t.Fatalf("Expected %d labels, got %d", len(want), len(s.Labels))
	}
	for i := range want {
		if s.Labels[i] != want[i] {
			t.Errorf("Label %d: expected %+v, got %+v", i, want[i], s.Labels[i])
		}
	}

	if s.MinLatency != 20*time.Millisecond || s.MaxLatency != 40*time.Millisecond {
		t.Errorf("Unexpected latency range %v..%v", s.MinLatency, s.MaxLatency)
	}
	if s.AvgLatency != 30*time.Millisecond {
		t.Errorf("Expected avg latency 30ms, got %v", s.AvgLatency)
	}
	if s.P95Latency != 40*time.Millisecond {
		t.Errorf("Expected p95 latency 40ms, got %v", s.P95Latency)
	}
}

func TestWriteReport_Text(t *testing.T) {
	tracker := newTestTracker()
	tracker.RecordResult(result("POLITICS", 20*time.Millisecond))
	tracker.RecordResult(result("POLITICS", 40*time.Millisecond))
	tracker.RecordResult(result("WELLNESS", 30*time.Millisecond))
	tracker.RecordResult(result("WELLNESS", 30*time.Millisecond))
	tracker.RecordError(errors.New("timeout"))

	var buf bytes.Buffer
	if err := WriteReport(&buf, tracker.Summary(), "text"); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Classified 4 of 5 headlines in 1.5s, 1 failed",
		"Latency: min 20ms, avg 30ms, p95 40ms, max 40ms",
		"POLITICS",
		"50.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteReport_EmptyRun(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, newTestTracker().Summary(), "text"); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if strings.Contains(buf.String(), "Latency") {
		t.Errorf("Did not expect latency line for an empty run, got:\n%s", buf.String())
	}
}

func TestWriteReport_JSON(t *testing.T) {
	tracker := newTestTracker()
	tracker.RecordResult(result("POLITICS", 20*time.Millisecond))

	var buf bytes.Buffer
	if err := WriteReport(&buf, tracker.Summary(), "json"); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded.Classified != 1 || decoded.Labels[0].Label != "POLITICS" {
		t.Errorf("Unexpected decoded summary: %+v", decoded)
	}
}
