package signature

import "strings"

// lineAt returns the 1-based line number of offset.
func lineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}

	return strings.Count(text[:offset], "\n") + 1
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(text string, offset int) string {
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	line := text[start:]

	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}
