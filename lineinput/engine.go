package lineinput

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

const initialCapacity = 16

// Engine is a single-line, rune-addressed text buffer with a cursor.
//
// Engine is not safe for concurrent use; it is owned by the event loop that
// feeds it keys.
type Engine struct {
	buf []byte

	// charCount is the rune count of buf.
	charCount int
	// multiByteCount is the number of runes in buf encoded with more than one byte.
	multiByteCount int

	cursor Cursor
}

func New() *Engine {
	return &Engine{
		buf:    make([]byte, 0, initialCapacity),
		cursor: AtEnd(),
	}
}

// ProcessKey applies k to the buffer. It returns a Signal and true when the
// editing session should end, and false for every edit that keeps it open.
func (e *Engine) ProcessKey(k Key) (Signal, bool) {
	switch k.Type {
	case KeyRune:
		e.insert(k.Rune)
	case KeyBackspace:
		e.backspace()
	case KeyDelete:
		e.delete()
	case KeyLeft:
		e.left()
	case KeyRight:
		e.right()
	case KeyHome:
		if e.charCount > 0 {
			e.cursor = AtIndex(0)
		}
	case KeyEnd:
		e.cursor = AtEnd()
	case KeyEnter:
		return e.commit(), true
	case KeyEscape:
		return e.escape()
	}
	// Up, Down and unclassified keys leave the line untouched.
	return Signal{}, false
}

// Text returns the current line.
func (e *Engine) Text() string { return string(e.buf) }

// Len returns the byte length of the current line.
func (e *Engine) Len() int { return len(e.buf) }

// CharCount returns the number of runes in the current line.
func (e *Engine) CharCount() int { return e.charCount }

// MultiByteCount returns the number of runes that encode to more than one byte.
func (e *Engine) MultiByteCount() int { return e.multiByteCount }

func (e *Engine) Empty() bool { return e.charCount == 0 }

func (e *Engine) Cursor() Cursor { return e.cursor }

// CursorIndex returns the cursor as a rune index. AtEnd reports CharCount.
func (e *Engine) CursorIndex() int {
	if i, ok := e.cursor.Index(); ok {
		return i
	}
	return e.charCount
}

// Reset empties the line and moves the cursor to the end.
func (e *Engine) Reset() {
	e.buf = e.buf[:0]
	e.charCount = 0
	e.multiByteCount = 0
	e.cursor = AtEnd()
}

func (e *Engine) insert(c rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], c)

	if i, ok := e.cursor.Index(); ok {
		off := e.byteOffset(i)
		e.buf = slices.Insert(e.buf, off, enc[:n]...)
		// The cursor stays to the right of the inserted rune.
		e.cursor = AtIndex(i + 1)
	} else {
		e.buf = append(e.buf, enc[:n]...)
	}

	e.charCount++
	if n > 1 {
		e.multiByteCount++
	}
}

func (e *Engine) left() {
	if i, ok := e.cursor.Index(); ok {
		if i > 0 {
			e.cursor = AtIndex(i - 1)
		}
		return
	}
	if e.charCount > 0 {
		e.cursor = AtIndex(e.charCount - 1)
	}
}

func (e *Engine) right() {
	i, ok := e.cursor.Index()
	if !ok {
		return
	}
	if i+1 >= e.charCount {
		e.cursor = AtEnd()
		return
	}
	e.cursor = AtIndex(i + 1)
}

func (e *Engine) delete() {
	i, ok := e.cursor.Index()
	if !ok || i >= e.charCount {
		return
	}
	e.removeAt(i)
	if i == e.charCount {
		e.cursor = AtEnd()
	}
}

func (e *Engine) backspace() {
	i, ok := e.cursor.Index()
	if !ok {
		if e.charCount > 0 {
			e.removeAt(e.charCount - 1)
		}
		return
	}
	if i == 0 {
		return
	}
	e.removeAt(i - 1)
	if e.charCount == 0 {
		e.cursor = AtEnd()
		return
	}
	e.cursor = AtIndex(i - 1)
}

func (e *Engine) commit() Signal {
	text := string(e.buf)
	e.Reset()
	return Signal{Kind: Commit, Text: text}
}

// escape clears a non-empty line first; only an already empty line cancels.
func (e *Engine) escape() (Signal, bool) {
	if e.charCount > 0 {
		e.Reset()
		return Signal{}, false
	}
	if len(e.buf) != 0 || !e.cursor.IsEnd() {
		invariantf("escape on empty line with buf=%q cursor=%v", e.buf, e.cursor)
	}
	return Signal{Kind: Cancel}, true
}

// removeAt removes exactly one rune at rune index i.
func (e *Engine) removeAt(i int) {
	if i < 0 || i >= e.charCount {
		invariantf("remove index %d outside [0, %d)", i, e.charCount)
	}

	off := e.byteOffset(i)
	size := 1
	if e.multiByteCount > 0 {
		_, size = utf8.DecodeRune(e.buf[off:])
	}
	e.buf = slices.Delete(e.buf, off, off+size)

	e.charCount--
	if size > 1 {
		e.multiByteCount--
	}
}

// byteOffset maps rune index i (0 <= i <= charCount) to a byte offset in buf.
// A buffer without multi-byte runes maps indices one to one.
func (e *Engine) byteOffset(i int) int {
	if i < 0 || i > e.charCount {
		invariantf("cursor index %d outside [0, %d]", i, e.charCount)
	}
	if e.multiByteCount == 0 {
		return i
	}

	off, n := 0, 0
	for n < i {
		_, size := utf8.DecodeRune(e.buf[off:])
		off += size
		n++
	}
	return off
}

// checkInvariants recomputes the incremental bookkeeping from scratch and
// panics when it disagrees with the tracked fields.
func (e *Engine) checkInvariants() {
	if !utf8.Valid(e.buf) {
		invariantf("buffer is not valid UTF-8: %q", e.buf)
	}

	chars, multi := 0, 0
	for _, r := range string(e.buf) {
		chars++
		if utf8.RuneLen(r) > 1 {
			multi++
		}
	}
	if chars != e.charCount {
		invariantf("char count %d, buffer holds %d", e.charCount, chars)
	}
	if multi != e.multiByteCount {
		invariantf("multi-byte count %d, buffer holds %d", e.multiByteCount, multi)
	}
	if e.multiByteCount > e.charCount {
		invariantf("multi-byte count %d exceeds char count %d", e.multiByteCount, e.charCount)
	}

	if i, ok := e.cursor.Index(); ok {
		if e.charCount == 0 {
			invariantf("cursor %v on empty line", e.cursor)
		}
		if i < 0 || i > e.charCount {
			invariantf("cursor index %d outside [0, %d]", i, e.charCount)
		}
	}
}

// String renders the engine state for debug logging.
func (e *Engine) String() string {
	return fmt.Sprintf("buf: %s, len: %d, chars: %d, cursor pos: %d",
		e.buf, len(e.buf), e.charCount, e.CursorIndex())
}

func invariantf(format string, args ...any) {
	panic("lineinput: invariant violated: " + fmt.Sprintf(format, args...))
}
