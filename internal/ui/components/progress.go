package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar renders a horizontal fill bar, used for the confidence meter and the
// probability rows
type Bar struct {
	Width    int
	Fraction float64
	Fill     lipgloss.TerminalColor
	Track    lipgloss.TerminalColor
	Label    string
}

// NewBar creates a bar of the given width in cells
func NewBar(width int) *Bar {
	return &Bar{
		Width: width,
		Fill:  lipgloss.Color("#10B981"),
		Track: lipgloss.Color("#9CA3AF"),
	}
}

// SetFraction sets the filled share, clamped to [0,1]
func (b *Bar) SetFraction(f float64) {
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	b.Fraction = f
}

// Filled returns the number of filled cells
func (b *Bar) Filled() int {
	if b.Width <= 0 {
		return 0
	}
	filled := int(float64(b.Width)*b.Fraction + 0.5)
	if filled > b.Width {
		filled = b.Width
	}
	return filled
}

// Render renders the bar followed by its label, if any
func (b *Bar) Render() string {
	if b.Width <= 0 {
		return b.Label
	}

	filled := b.Filled()
	fillStyle := lipgloss.NewStyle().Foreground(b.Fill).Bold(true)
	trackStyle := lipgloss.NewStyle().Foreground(b.Track)

	bar := fillStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", b.Width-filled))

	if b.Label != "" {
		return fmt.Sprintf("%s %s", bar, b.Label)
	}
	return bar
}

// SpinnerFrames are the braille frames of the busy indicator
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner represents a spinning progress indicator
type Spinner struct {
	Frame int
	Label string
	Color lipgloss.TerminalColor
}

// NewSpinner creates a new spinner
func NewSpinner(label string) *Spinner {
	return &Spinner{
		Label: label,
		Color: lipgloss.Color("#10B981"),
	}
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(SpinnerFrames)
}

// Reset rewinds the animation to the first frame
func (s *Spinner) Reset() {
	s.Frame = 0
}

// Render renders the spinner
func (s *Spinner) Render() string {
	char := lipgloss.NewStyle().Foreground(s.Color).Bold(true).Render(SpinnerFrames[s.Frame%len(SpinnerFrames)])
	if s.Label != "" {
		return fmt.Sprintf("%s %s", char, s.Label)
	}
	return char
}
