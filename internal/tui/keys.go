package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the overlay panels.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	markAll key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	markAll: key.NewBinding(key.WithKeys("a")),
}
