package lineinput

import "fmt"

// Cursor is the logical insertion point of an Engine.
//
// A cursor is either at a rune index or at the distinguished end position.
// The zero value is the end position.
type Cursor struct {
	index int
	atIdx bool
}

// AtEnd returns the end-of-line cursor.
func AtEnd() Cursor { return Cursor{} }

// AtIndex returns a cursor placed before the rune at index i.
func AtIndex(i int) Cursor { return Cursor{index: i, atIdx: true} }

// IsEnd reports whether c is the end-of-line cursor.
func (c Cursor) IsEnd() bool { return !c.atIdx }

// Index returns the rune index of c and true, or 0 and false for AtEnd.
func (c Cursor) Index() (int, bool) {
	if !c.atIdx {
		return 0, false
	}
	return c.index, true
}

func (c Cursor) String() string {
	if !c.atIdx {
		return "End"
	}
	return fmt.Sprintf("Index(%d)", c.index)
}
