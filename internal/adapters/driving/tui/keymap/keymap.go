// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the recipe wizard.
type KeyMap struct {
	// Quit exits immediately without saving.
	Quit key.Binding

	// Cancel abandons the recipe.
	Cancel key.Binding

	// Next accepts the current step. On an empty ingredient or
	// instruction it moves on or saves.
	Next key.Binding

	// Yes and No answer the new-ingredient prompt.
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "add it"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "go back"),
		),
	}
}

// InputHelp returns keybindings shown under text steps.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cancel}
}

// ConfirmHelp returns keybindings shown on the new-ingredient prompt.
func (k *KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Cancel}
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
