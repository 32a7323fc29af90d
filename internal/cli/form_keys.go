package cli

import "github.com/charmbracelet/bubbles/key"

type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Export  key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "back")),
		Export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "clear form")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
	}
}

// ShortHelp returns the bindings shown in the bottom bar.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Export, k.Reset, k.Quit}
}
