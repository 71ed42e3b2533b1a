package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application key bindings. Plain runes feed the search
// query, so actions live on control keys; space is reserved for favorites
// since script names never contain it.
type KeyMap struct {
	Quit      key.Binding
	Escape    key.Binding
	Enter     key.Binding
	Configure key.Binding
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Favorite  key.Binding
	CopyCmd   key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Configure: key.NewBinding(key.WithKeys("tab")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		NextTab:   key.NewBinding(key.WithKeys("right")),
		PrevTab:   key.NewBinding(key.WithKeys("left")),
		Favorite:  key.NewBinding(key.WithKeys(" ")),
		CopyCmd:   key.NewBinding(key.WithKeys("ctrl+y")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}
