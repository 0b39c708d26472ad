package signature

import m "github.com/mouse-blink/paramfix/internal/model"

// scanState is the lexical mode of the body scanner.
type scanState int

const (
	stateNormal scanState = iota
	stateSingleQuote
	stateDoubleQuote
	stateTemplate
	stateLineComment
	stateBlockComment
)

func (s scanState) closingQuote() byte {
	switch s {
	case stateSingleQuote:
		return '\''
	case stateDoubleQuote:
		return '"'
	case stateTemplate:
		return '`'
	case stateNormal, stateLineComment, stateBlockComment:
	}

	return 0
}

// FindBodyEnd scans text from offset from and returns the offset one past the
// brace that brings the depth back to zero after the first opening brace.
// Braces inside string, template and comment text are ignored. When the text
// ends first it returns len(text) and false.
func FindBodyEnd(text string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}

	state := stateNormal
	depth := 0

	for i := from; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateNormal:
			switch c {
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			case '`':
				state = stateTemplate
			case '/':
				if i+1 < len(text) && text[i+1] == '/' {
					state = stateLineComment
					i++
				} else if i+1 < len(text) && text[i+1] == '*' {
					state = stateBlockComment
					i++
				}
			case '{':
				depth++
			case '}':
				if depth == 0 {
					continue
				}

				depth--
				if depth == 0 {
					return i + 1, true
				}
			}
		case stateSingleQuote, stateDoubleQuote, stateTemplate:
			if c == '\\' {
				i++
				continue
			}

			if c == state.closingQuote() {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return len(text), false
}

// Span returns the FunctionSpan of the handler whose signature starts at
// start and whose body opens at or after bodyFrom.
func Span(text string, start, bodyFrom int) m.FunctionSpan {
	end, balanced := FindBodyEnd(text, bodyFrom)

	return m.FunctionSpan{Start: start, End: end, Balanced: balanced}
}

// FindBodyOpen returns the offset of the brace that opens the function body
// following a parameter list that closed just before from, or -1 when a
// statement ends first. A return type annotation in between is skipped:
// braces nested in generic arguments or parentheses, and object type
// literals in type position, do not count.
func FindBodyOpen(text string, from int) int {
	angle, paren := 0, 0
	prev := byte(0) // last significant byte

	for i := max(from, 0); i < len(text); i++ {
		c := text[i]

		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '\'', '"', '`':
			i = skipQuoted(text, i)
		case '<':
			angle++
		case '>':
			// the arrow of a function type is not a closing bracket
			if prev != '=' && angle > 0 {
				angle--
			}
		case '(', '[':
			paren++
		case ')', ']':
			if paren > 0 {
				paren--
			}
		case ';':
			if angle == 0 && paren == 0 {
				return -1
			}
		case '{':
			if angle == 0 && paren == 0 && !typePosition(prev) {
				return i
			}

			end, balanced := FindBodyEnd(text, i)
			if !balanced {
				return -1
			}

			i = end - 1
			c = '}'
		}

		prev = c
	}

	return -1
}

// typePosition reports whether a brace after prev starts an object type
// rather than a block.
func typePosition(prev byte) bool {
	switch prev {
	case ':', '|', '&', ',', '<', '(', '[':
		return true
	}

	return false
}

// skipQuoted returns the offset of the quote closing the literal opened at i,
// or the last offset of text.
func skipQuoted(text string, i int) int {
	quote := text[i]

	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}

	return len(text) - 1
}
