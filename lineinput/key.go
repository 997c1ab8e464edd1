package lineinput

// KeyType classifies a key event as far as the engine cares.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
)

var keyTypeNames = map[KeyType]string{
	KeyUnknown:   "unknown",
	KeyRune:      "rune",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
}

func (t KeyType) String() string {
	if s, ok := keyTypeNames[t]; ok {
		return s
	}
	return keyTypeNames[KeyUnknown]
}

// Key is one classified key event. Rune is only meaningful for KeyRune.
type Key struct {
	Type KeyType
	Rune rune
}

// RuneKey returns a character-input key for r.
func RuneKey(r rune) Key { return Key{Type: KeyRune, Rune: r} }

// SignalKind tells the caller how an editing session ended.
type SignalKind int

const (
	// Commit hands the line to the caller.
	Commit SignalKind = iota + 1
	// Cancel abandons editing with an empty line.
	Cancel
)

func (k SignalKind) String() string {
	switch k {
	case Commit:
		return "commit"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

// Signal is returned by Engine.ProcessKey when editing should end.
type Signal struct {
	Kind SignalKind
	// Text is the committed line. Empty for Cancel.
	Text string
}
