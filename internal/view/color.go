package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultAccent is used for labels without a category colour
const DefaultAccent = "#4a90e2"

// CategoryColors maps the known categories to their accent colour
var CategoryColors = map[string]string{
	"ENTERTAINMENT":  "#e74c3c",
	"POLITICS":       "#3498db",
	"STYLE & BEAUTY": "#e91e63",
	"TRAVEL":         "#00bcd4",
	"WELLNESS":       "#4caf50",
}

// Accent is a two-stop gradient for the category badge
type Accent struct {
	From  string
	To    string
	Known bool
}

// AccentFor looks up the accent for label. Unknown labels get the default accent.
func AccentFor(label string) Accent {
	color, ok := CategoryColors[label]
	if !ok {
		return Accent{From: DefaultAccent, To: Lighten(DefaultAccent, 20)}
	}
	return Accent{From: color, To: Lighten(color, 20), Known: true}
}

// Lighten shifts every channel of a #rrggbb colour by percent of full scale,
// clamping at 0 and 255. Negative percentages darken. Malformed input is
// returned unchanged.
func Lighten(hex string, percent float64) string {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 6 {
		return hex
	}
	num, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return hex
	}

	amt := int(math.Round(2.55 * percent))
	r := clampChannel(int(num>>16) + amt)
	g := clampChannel(int(num>>8&0xff) + amt)
	b := clampChannel(int(num&0xff) + amt)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clampChannel(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}
