package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

const inputHeight = 5

// newHeadlineInput creates the headline editor. Length is not capped here;
// the counter and submit validation report over-long text instead.
func newHeadlineInput(styles *Styles, keys keyMap) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste a news headline..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)

	// enter submits, so only the newline binding breaks lines
	ta.KeyMap.InsertNewline = keys.Newline

	// a static cursor keeps the editor from scheduling blink ticks
	ta.Cursor.SetMode(cursor.CursorStatic)

	focused := textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		EndOfBuffer: styles.Muted,
		Placeholder: styles.Muted,
		Text:        styles.Body,
	}
	blurred := focused
	blurred.Text = styles.Muted
	ta.FocusedStyle = focused
	ta.BlurredStyle = blurred

	ta.Focus()
	return ta
}
