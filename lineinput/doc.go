// Package lineinput implements the single-line input engine used while the
// console is in editing mode.
//
// Cursor positions are 0-based indices in Unicode scalar values (runes), never
// byte offsets. The engine tracks the rune count and the number of multi-byte
// runes incrementally so that a pure-ASCII line edits by byte index without
// scanning rune boundaries.
package lineinput
