package view

import "testing"

func TestLighten(t *testing.T) {
	tests := []struct {
		hex     string
		percent float64
		want    string
	}{
		{"#e74c3c", 20, "#ff7f6f"},
		{"#3498db", 20, "#67cbff"},
		{"#000000", 20, "#333333"},
		{"#ffffff", -20, "#cccccc"},
		{"#ffffff", 20, "#ffffff"},
		{"not-a-color", 20, "not-a-color"},
		{"#zzzzzz", 20, "#zzzzzz"},
	}

	for _, tt := range tests {
		if got := Lighten(tt.hex, tt.percent); got != tt.want {
			t.Errorf("Lighten(%s, %v) = %s, want %s", tt.hex, tt.percent, got, tt.want)
		}
	}
}

func TestAccentFor(t *testing.T) {
	for label, color := range CategoryColors {
		accent := AccentFor(label)
		if !accent.Known || accent.From != color {
			t.Errorf("AccentFor(%s) = %+v, want %s", label, accent, color)
		}
	}

	if len(CategoryColors) != 5 {
		t.Errorf("Expected five known categories, got %d", len(CategoryColors))
	}

	unknown := AccentFor("SPORTS")
	if unknown.Known || unknown.From != DefaultAccent {
		t.Errorf("Unexpected accent for unknown label: %+v", unknown)
	}
}
