package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/yildizm/NewsLens/internal/classify"
)

// Writer puts text on the system clipboard
type Writer interface {
	Write(text string) error
}

// OSC52 writes to the clipboard of the terminal emulator via the OSC52
// escape sequence, which also works over SSH.
type OSC52 struct {
	out    io.Writer
	tmux   bool
	screen bool
}

// NewOSC52 creates a clipboard writer targeting out. Tmux and screen
// passthrough are picked from the environment.
func NewOSC52(out io.Writer) *OSC52 {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(os.Getenv("TERM"), "screen"),
	}
}

// Write implements Writer. Failures are reported as classify.KindClipboard errors.
func (c *OSC52) Write(text string) error {
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.screen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return classify.NewErrorWithCause(classify.KindClipboard, classify.MsgClipboardFailure,
			fmt.Errorf("failed to write OSC52 sequence: %w", err))
	}
	return nil
}

// Func adapts a function to Writer
type Func func(text string) error

// Write implements Writer
func (f Func) Write(text string) error {
	return f(text)
}
