package lineinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromKeyMsg_ClassifiesBindings(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Key
	}{
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: Key{Type: KeyLeft}},
		{name: "ctrl+b", msg: tea.KeyMsg{Type: tea.KeyCtrlB}, want: Key{Type: KeyLeft}},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: Key{Type: KeyRight}},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: Key{Type: KeyUp}},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: Key{Type: KeyDown}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: Key{Type: KeyHome}},
		{name: "ctrl+a", msg: tea.KeyMsg{Type: tea.KeyCtrlA}, want: Key{Type: KeyHome}},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: Key{Type: KeyEnd}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: Key{Type: KeyBackspace}},
		{name: "delete", msg: tea.KeyMsg{Type: tea.KeyDelete}, want: Key{Type: KeyDelete}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Key{Type: KeyEnter}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Key{Type: KeyEscape}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: RuneKey(' ')},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, want: RuneKey('é')},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, want: Key{}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: Key{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromKeyMsg(km, tc.msg); got != tc.want {
				t.Fatalf("FromKeyMsg: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestKeysFromMsg_PasteExpandsRunes(t *testing.T) {
	km := DefaultKeyMap()
	keys := KeysFromMsg(km, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4€\n2"), Paste: true})
	want := []Key{RuneKey('4'), RuneKey('€'), RuneKey(' '), RuneKey('2')}
	if len(keys) != len(want) {
		t.Fatalf("key count: got %d, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: got %+v, want %+v", i, keys[i], want[i])
		}
	}
}

func TestKeysFromMsg_DrivesEngine(t *testing.T) {
	km := DefaultKeyMap()
	e := New()
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("4100")},
		{Type: tea.KeyHome},
		{Type: tea.KeyRunes, Runes: []rune("€")},
		{Type: tea.KeyEnd},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyTab},
	}
	for _, msg := range msgs {
		for _, k := range KeysFromMsg(km, msg) {
			if sig, ok := e.ProcessKey(k); ok {
				t.Fatalf("unexpected signal %v", sig)
			}
		}
	}
	if got, want := e.Text(), "€410"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	var sig Signal
	var ok bool
	for _, k := range KeysFromMsg(km, tea.KeyMsg{Type: tea.KeyEnter}) {
		sig, ok = e.ProcessKey(k)
	}
	if !ok || sig.Kind != Commit || sig.Text != "€410" {
		t.Fatalf("enter: got (%+v, %v)", sig, ok)
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) != 2 {
		t.Fatalf("help bindings missing")
	}
}
