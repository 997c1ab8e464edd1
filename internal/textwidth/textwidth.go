// Package textwidth measures terminal cell widths of runes and strings.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the number of terminal cells r occupies.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	if s == "" {
		return 0
	}
	w := runewidth.StringWidth(s)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports zero for some emoji sequences uniseg measures.
		if fallback := uniseg.StringWidth(s); fallback > w {
			w = fallback
		}
	}
	return w
}

// Window returns the slice of s that fits into width cells while keeping the
// rune at cursor (a rune index, len(runes) meaning end of line) visible, plus
// the caret's cell column inside that slice.
//
// One trailing cell is reserved for an end-of-line caret.
func Window(s string, cursor, width int) (visible string, caret int) {
	if width <= 0 {
		return "", 0
	}
	runes := []rune(s)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	widths := make([]int, len(runes))
	for i, r := range runes {
		widths[i] = RuneWidth(r)
	}

	// Walk left from the cursor until the prefix no longer fits.
	caretW := 1
	if cursor < len(runes) && widths[cursor] > 1 {
		caretW = widths[cursor]
	}
	start := cursor
	used := caretW
	for start > 0 && used+widths[start-1] <= width {
		start--
		used += widths[start]
	}

	caret = 0
	for i := start; i < cursor; i++ {
		caret += widths[i]
	}

	end := start
	total := 0
	for end < len(runes) && total+widths[end] <= width {
		total += widths[end]
		end++
	}
	if end < cursor {
		end = cursor
	}
	return string(runes[start:end]), caret
}
