package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the classifier key bindings. Keys not bound here go to the
// headline editor.
type keyMap struct {
	Quit        key.Binding
	Submit      key.Binding
	Newline     key.Binding
	Clear       key.Binding
	ClearInput  key.Binding
	Copy        key.Binding
	ModelInfo   key.Binding
	Example     key.Binding
	ToggleFocus key.Binding
	Back        key.Binding

	DismissAlert key.Binding
	CloseModal   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "classify"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear input"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		ModelInfo: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "model info"),
		),
		Example: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "example"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to input"),
		),
		DismissAlert: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "dismiss"),
		),
		CloseModal: key.NewBinding(
			key.WithKeys("esc", "enter", "q", "ctrl+o"),
			key.WithHelp("esc", "close"),
		),
	}
}

// footerBindings are the keys listed in the footer, in display order
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.Clear, k.Copy, k.ModelInfo, k.Example, k.Quit}
}
