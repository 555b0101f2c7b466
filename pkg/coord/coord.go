// Package coord converts between byte offset, character (code point) offset,
// and (line, column) position — the one shared utility every other core
// package relies on to place a Diagnostic or a Token in document space.
package coord

import "strings"

// SplitLines splits text on "\n" the way the rest of the core expects:
// each newline counts as exactly one character separator between lines.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// CharOffsetToPosition converts a character (code point) offset into a
// zero-indexed (line, column) position, both counted in code points.
//
// For an offset equal to the total character count of lines (i.e. the
// end of the text), it returns the line/column of the end-of-text. For an
// offset beyond that, it returns (0, 0) — a deliberate safe default;
// callers must not treat that as a signal that the offset was in range.
func CharOffsetToPosition(lines []string, offset int) (line, column int) {
	current := 0
	for i, l := range lines {
		lineLen := runeCount(l)
		if current+lineLen >= offset {
			return i, offset - current
		}
		current += lineLen + 1 // +1 for the newline separator
	}
	return 0, 0
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
