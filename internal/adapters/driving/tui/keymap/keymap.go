// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves the suggestion cursor up.
	Up key.Binding

	// Down moves the suggestion cursor down.
	Down key.Binding

	// Left moves the suggestion cursor left.
	Left key.Binding

	// Right moves the suggestion cursor right.
	Right key.Binding

	// Select asks the highlighted topic.
	Select key.Binding

	// Skip reveals the latest answer in full.
	Skip key.Binding

	// NextCitation moves the citation cursor on the latest answer.
	NextCitation key.Binding

	// ToggleCitation expands or collapses the citation under the cursor.
	ToggleCitation key.Binding

	// ScrollUp scrolls the conversation up a page.
	ScrollUp key.Binding

	// ScrollDown scrolls the conversation down a page.
	ScrollDown key.Binding

	// Reload fetches content again after a failed load.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("space", "reveal full answer"),
		),
		NextCitation: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next citation"),
		),
		ToggleCitation: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand citation"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// RevealingHelp returns keybindings while an answer is being typed.
func (k *KeyMap) RevealingHelp() []key.Binding {
	return []key.Binding{k.Skip, k.ScrollUp, k.Quit}
}

// CitationHelp returns keybindings when the latest answer has citations.
func (k *KeyMap) CitationHelp() []key.Binding {
	return []key.Binding{k.Select, k.NextCitation, k.ToggleCitation, k.Quit}
}

// NoticeHelp returns keybindings for the load failure notice.
func (k *KeyMap) NoticeHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Skip, k.NextCitation, k.ToggleCitation},
		{k.ScrollUp, k.ScrollDown, k.Reload, k.Quit},
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
