package view

import (
	"math"
	"testing"
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
)

func strPtr(s string) *string { return &s }

func TestTierFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{1.0, TierPositive},
		{0.823, TierPositive},
		{0.7, TierPositive},
		{0.6999, TierCaution},
		{0.5, TierCaution},
		{0.4999, TierNegative},
		{0.0, TierNegative},
	}

	for _, tt := range tests {
		if got := TierFor(tt.confidence); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.823, "82.3"},
		{0.1, "10.0"},
		{1, "100.0"},
		{0, "0.0"},
		{0.12345, "12.3"},
		{0.99999, "100.0"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.p); got != tt.want {
			t.Errorf("FormatPercent(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestFraction_Clamps(t *testing.T) {
	if f := Fraction(1.5); f != 1 {
		t.Errorf("Expected clamp to 1, got %v", f)
	}
	if f := Fraction(-0.2); f != 0 {
		t.Errorf("Expected clamp to 0, got %v", f)
	}
	if f := Fraction(0.823); math.Abs(f-0.823) > 1e-9 {
		t.Errorf("Expected 0.823, got %v", f)
	}
}

func TestNewPredictionView_Scenario(t *testing.T) {
	p := &classify.Prediction{
		Label:      "POLITICS",
		Confidence: 0.823,
		AllProbabilities: []classify.LabelProbability{
			{Label: "POLITICS", Probability: 0.823},
			{Label: "TRAVEL", Probability: 0.1},
		},
	}

	v := NewPredictionView(p, 120, 100)

	if v.Label != "POLITICS" {
		t.Errorf("Expected label POLITICS, got %s", v.Label)
	}
	if v.ConfidenceText != "82.3%" {
		t.Errorf("Expected 82.3%%, got %s", v.ConfidenceText)
	}
	if v.Tier != TierPositive {
		t.Errorf("Expected positive tier, got %s", v.Tier)
	}
	if !v.Accent.Known || v.Accent.From != "#3498db" {
		t.Errorf("Expected POLITICS accent, got %+v", v.Accent)
	}
	if v.Preprocessed != PreprocessedPlaceholder {
		t.Errorf("Expected placeholder, got %q", v.Preprocessed)
	}
	if v.ScrollIntoView {
		t.Error("Wide terminals should not scroll")
	}
	if len(v.Rows) != 2 || v.Rows[1].PercentText != "10.0%" {
		t.Fatalf("Unexpected rows: %+v", v.Rows)
	}
	if v.Rows[1].Delay != 100*time.Millisecond {
		t.Errorf("Expected 100ms stagger for second row, got %v", v.Rows[1].Delay)
	}
}

func TestNewPredictionView_PreservesOrder(t *testing.T) {
	labels := []string{"ENTERTAINMENT", "POLITICS", "STYLE & BEAUTY", "TRAVEL", "WELLNESS"}

	// every permutation of the five labels
	var permute func(prefix, rest []string)
	count := 0
	permute = func(prefix, rest []string) {
		if len(rest) == 0 {
			count++
			probs := make([]classify.LabelProbability, len(prefix))
			for i, label := range prefix {
				probs[i] = classify.LabelProbability{Label: label, Probability: float64(i) / 10}
			}
			v := NewPredictionView(&classify.Prediction{Label: prefix[0], AllProbabilities: probs}, 120, 100)
			for i, row := range v.Rows {
				if row.Label != prefix[i] || row.Index != i {
					t.Fatalf("Row %d = %s, want %s (order %v)", i, row.Label, prefix[i], prefix)
				}
			}
			return
		}
		for i := range rest {
			next := append(append([]string{}, prefix...), rest[i])
			remaining := append(append([]string{}, rest[:i]...), rest[i+1:]...)
			permute(next, remaining)
		}
	}
	permute(nil, labels)

	if count != 120 {
		t.Errorf("Expected 120 permutations, got %d", count)
	}
}

func TestNewPredictionView_Details(t *testing.T) {
	p := &classify.Prediction{
		Label:            "SCIENCE",
		Confidence:       0.42,
		PreprocessedText: strPtr("rocket launch delayed"),
	}

	v := NewPredictionView(p, 80, 100)

	if v.Tier != TierNegative {
		t.Errorf("Expected negative tier, got %s", v.Tier)
	}
	if v.Accent.Known || v.Accent.From != DefaultAccent {
		t.Errorf("Unknown labels keep the default accent, got %+v", v.Accent)
	}
	if v.Preprocessed != "rocket launch delayed" {
		t.Errorf("Expected preprocessed text verbatim, got %q", v.Preprocessed)
	}
	if !v.ScrollIntoView {
		t.Error("Narrow terminals should scroll results into view")
	}
	if len(v.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(v.Rows))
	}
}

func TestNewPredictionView_Nil(t *testing.T) {
	v := NewPredictionView(nil, 120, 100)
	if v.Label != "" || v.Preprocessed != PreprocessedPlaceholder {
		t.Errorf("Unexpected view for nil prediction: %+v", v)
	}
}

func TestCopyText(t *testing.T) {
	p := &classify.Prediction{Label: "POLITICS", Confidence: 0.823}
	want := "Predicted Category: POLITICS\nConfidence: 82.3%"
	if got := CopyText(p); got != want {
		t.Errorf("CopyText = %q, want %q", got, want)
	}
}
