package lineinput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to engine key types.
//
// Bindings carry emacs-style ctrl fallbacks for terminals that do not report
// home/end/delete.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Escape     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),

		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear / leave")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Enter, km.Escape, km.Home, km.End}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Home, km.End},
		{km.Backspace, km.Delete, km.Enter, km.Escape},
	}
}

// KeysFromMsg classifies a Bubble Tea key message. Rune messages (including
// pastes) yield one KeyRune per rune; alt-modified runes are dropped.
func KeysFromMsg(km KeyMap, msg tea.KeyMsg) []Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		out := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\n' || r == '\r' {
				// Pasted line breaks never submit; the line stays single.
				r = ' '
			}
			out = append(out, RuneKey(r))
		}
		return out
	case tea.KeySpace:
		return []Key{RuneKey(' ')}
	}

	k := FromKeyMsg(km, msg)
	if k.Type == KeyUnknown {
		return nil
	}
	return []Key{k}
}

// FromKeyMsg classifies a non-rune Bubble Tea key message. The first rune of a
// rune message is returned as KeyRune.
func FromKeyMsg(km KeyMap, msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, km.Left):
		return Key{Type: KeyLeft}
	case key.Matches(msg, km.Right):
		return Key{Type: KeyRight}
	case key.Matches(msg, km.Up):
		return Key{Type: KeyUp}
	case key.Matches(msg, km.Down):
		return Key{Type: KeyDown}
	case key.Matches(msg, km.Home):
		return Key{Type: KeyHome}
	case key.Matches(msg, km.End):
		return Key{Type: KeyEnd}
	case key.Matches(msg, km.Backspace):
		return Key{Type: KeyBackspace}
	case key.Matches(msg, km.Delete):
		return Key{Type: KeyDelete}
	case key.Matches(msg, km.Enter):
		return Key{Type: KeyEnter}
	case key.Matches(msg, km.Escape):
		return Key{Type: KeyEscape}
	}

	if msg.Type == tea.KeySpace {
		return RuneKey(' ')
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		return RuneKey(msg.Runes[0])
	}
	return Key{}
}
