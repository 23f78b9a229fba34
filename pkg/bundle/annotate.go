// File: pkg/bundle/annotate.go
package bundle

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NumberWidth is the minimum width of the right-aligned line number column.
const NumberWidth = 4

// LineSeparator sits between the line number and the line content.
const LineSeparator = " | "

// SplitLines splits text on line boundaries and drops the terminators.
// Recognised boundaries are \n, \r\n, \r, \v, \f, the file/group/record
// separators \x1c-\x1e, NEL (U+0085), and U+2028/U+2029. A trailing
// boundary does not produce an empty final line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '\r' && strings.HasPrefix(text[i+1:], "\n"):
			lines = append(lines, text[start:i])
			size = 2
			start = i + size
		case isLineBoundary(r):
			lines = append(lines, text[start:i])
			start = i + size
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Annotate prefixes every line of text with its 1-based number.
// The result ends with a newline only when text does.
func Annotate(text string) string {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d%s%s", NumberWidth, i+1, LineSeparator, line)
	}
	if strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// StripNumbers undoes Annotate on a single annotated line.
func StripNumbers(line string) (string, bool) {
	_, rest, ok := strings.Cut(line, LineSeparator)
	return rest, ok
}
