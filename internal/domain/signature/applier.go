package signature

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/paramfix/internal/model"
)

// DefaultIndent is added to the signature's indentation when the body has no
// statement to copy indentation from.
const DefaultIndent = "  "

// Options tunes the inserted statement.
type Options struct {
	Indent string
	// Bound is the offset a function span may not reach, usually the start of
	// the next handler. Zero means the end of the text.
	Bound int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// Result describes what Apply did with one match.
type Result struct {
	Outcome  m.Outcome
	Span     m.FunctionSpan
	Warnings []m.Warning
}

// Apply rewrites the handler located by match and returns the whole text. The
// text is returned unchanged when the handler already awaits params or cannot
// be rewritten; Result.Outcome tells which.
func Apply(text string, match m.Match, opts Options) (string, Result) {
	line := lineAt(text, match.Start)

	if len(match.Fields) == 0 {
		return text, Result{
			Outcome: m.OutcomeSkippedNoFields,
			Warnings: []m.Warning{{
				Line:    line,
				Message: fmt.Sprintf("%s: params promise declares no typed fields", match.Name),
			}},
		}
	}

	var warnings []m.Warning

	if match.Partial {
		warnings = append(warnings, m.Warning{
			Line: line,
			Message: fmt.Sprintf("%s: params members must be separated by commas or semicolons, only %s handled",
				match.Name, strings.Join(match.Fields, ", ")),
		})
	}

	open := FindBodyOpen(text, match.End)
	if open < 0 || (opts.Bound > 0 && open >= opts.Bound) {
		return text, Result{
			Outcome: m.OutcomeSkippedNoBody,
			Warnings: append(warnings, m.Warning{
				Line:    line,
				Message: fmt.Sprintf("%s: no function body follows the signature", match.Name),
			}),
		}
	}

	span := clampSpan(Span(text, match.Start, open), opts.Bound)
	if !span.Balanced {
		warnings = append(warnings, unbalancedWarning(text, match, line, span))
	}

	body := text[open:span.End]

	if awaitedDestructure(match.Fields[0]).MatchString(body) {
		return text, Result{Outcome: m.OutcomeAlreadyApplied, Span: span, Warnings: warnings}
	}

	outcome := m.OutcomeRewritten
	before := len(text)

	if loc := bareDestructure(match.Fields[0]).FindStringSubmatchIndex(body); loc != nil {
		at := open + loc[3]
		text = text[:at] + "await " + text[at:]
		outcome = m.OutcomeAwaitAdded
	} else {
		text = insertDestructure(text, match, open, span.End, opts)
	}

	bound := opts.Bound
	if bound > 0 {
		bound += len(text) - before
	}

	span = clampSpan(Span(text, match.Start, open), bound)
	scoped := text[span.Start:span.End]

	for _, field := range match.Fields {
		scoped = replaceAccess(scoped, field)
	}

	text = text[:span.Start] + scoped + text[span.End:]
	span.End = span.Start + len(scoped)

	return text, Result{Outcome: outcome, Span: span, Warnings: warnings}
}

// clampSpan cuts span at bound. A span that had to be cut is not balanced.
func clampSpan(span m.FunctionSpan, bound int) m.FunctionSpan {
	if bound > span.Start && span.End > bound {
		span.End = bound
		span.Balanced = false
	}

	return span
}

func unbalancedWarning(text string, match m.Match, line int, span m.FunctionSpan) m.Warning {
	msg := "function body is never closed, rewrite extends to end of file"
	if span.End < len(text) {
		msg = "function body end not found, rewrite stops at the next handler"
	}

	return m.Warning{Line: line, Message: fmt.Sprintf("%s: %s", match.Name, msg)}
}

// destructureHead matches `const { FIELD ... }` where FIELD is the first bound
// name.
func destructureHead(field string) string {
	return `(?:const|let|var)\s*\{\s*` + regexp.QuoteMeta(field) + `(?:[\s,:=][^{}]*)?\}\s*=\s*`
}

func awaitedDestructure(field string) *regexp.Regexp {
	return regexp.MustCompile(destructureHead(field) + `await\s+params\b`)
}

// bareDestructure captures everything before `params` in group 1.
func bareDestructure(field string) *regexp.Regexp {
	return regexp.MustCompile(`(` + destructureHead(field) + `)params[ \t]*(?:;|\r?\n|//|$)`)
}

// insertDestructure adds the awaiting destructure as the first statement of
// the body opening at open and closing just before end.
func insertDestructure(text string, match m.Match, open, end int, opts Options) string {
	binding := "const { " + strings.Join(match.Fields, ", ") + " } = await params"

	nl := strings.IndexByte(text[open:], '\n')
	if nl < 0 || open+nl >= end {
		return text[:open+1] + " " + binding + ";" + text[open+1:]
	}

	lineEnd := open + nl
	newline := "\n"

	if lineEnd > 0 && text[lineEnd-1] == '\r' {
		newline = "\r\n"
	}

	at := lineEnd + 1
	indent, semicolon := bodyStyle(text[at:end])

	if indent == "" {
		indent = lineIndent(text, match.Start) + opts.Indent
	}

	if semicolon {
		binding += ";"
	}

	return text[:at] + indent + binding + newline + text[at:]
}

// bodyStyle returns the indentation of the first non-blank line of body and
// whether that line ends with a semicolon. An empty indent means the body has
// no statement line to learn from.
func bodyStyle(body string) (string, bool) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "}") {
			return "", false
		}

		return line[:len(line)-len(strings.TrimLeft(line, " \t"))], strings.HasSuffix(trimmed, ";")
	}

	return "", false
}

// replaceAccess turns every whole-identifier `params.FIELD` in segment into
// `FIELD`. Member chains such as `ctx.params.FIELD` are left alone.
func replaceAccess(segment, field string) string {
	needle := "params." + field

	var b strings.Builder

	i := 0

	for {
		j := strings.Index(segment[i:], needle)
		if j < 0 {
			break
		}

		j += i
		k := j + len(needle)

		if (j == 0 || !isIdentByte(segment[j-1]) && segment[j-1] != '.') &&
			(k == len(segment) || !isIdentByte(segment[k])) {
			b.WriteString(segment[i:j])
			b.WriteString(field)
			i = k

			continue
		}

		b.WriteString(segment[i : j+1])
		i = j + 1
	}

	if i == 0 {
		return segment
	}

	b.WriteString(segment[i:])

	return b.String()
}
