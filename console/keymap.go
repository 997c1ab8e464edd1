package console

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the control-mode key bindings.
type KeyMap struct {
	Edit       key.Binding
	Up, Down   key.Binding
	Delete     key.Binding
	AlertsUp   key.Binding
	AlertsDown key.Binding
	Save       key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:       key.NewBinding(key.WithKeys("i", "a", "enter"), key.WithHelp("i", "new zone")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select down")),
		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete zone")),
		AlertsUp:   key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup", "newer alerts")),
		AlertsDown: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn", "older alerts")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Edit, km.Delete, km.Save, km.ToggleHelp, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Edit, km.Up, km.Down},
		{km.Delete, km.Save},
		{km.AlertsUp, km.AlertsDown},
		{km.ToggleHelp, km.Quit},
	}
}
