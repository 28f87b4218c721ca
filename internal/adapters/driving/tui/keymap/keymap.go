// Package keymap defines keybindings for the trace viewer.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// JumpSize is how many steps PageBack and PageForward move.
const JumpSize = 10

// KeyMap defines all keybindings for the trace viewer.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// Prev steps back one cell visit.
	Prev key.Binding

	// Next steps forward one cell visit.
	Next key.Binding

	// First jumps to the first visit.
	First key.Binding

	// Last jumps to the final visit.
	Last key.Binding

	// PageBack steps back JumpSize visits.
	PageBack key.Binding

	// PageForward steps forward JumpSize visits.
	PageForward key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "step"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		PageBack: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "back 10"),
		),
		PageForward: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn/f", "step 10"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.PageBack, k.PageForward},
		{k.First, k.Last},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
