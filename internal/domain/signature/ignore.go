package signature

import (
	"strings"

	m "github.com/mouse-blink/paramfix/internal/model"
)

const ignoreDirective = "paramfix:ignore"

// ignoreRule is the parsed form of a `paramfix:ignore [NAME, ...]` comment.
// Without names it covers every handler.
type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(handler string) bool {
	if r.all {
		return true
	}

	_, ok := r.names[strings.ToLower(handler)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*")
}

func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)

	switch {
	case strings.HasPrefix(s, "//"):
		s = strings.TrimPrefix(s, "//")
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
	case strings.HasPrefix(s, "*"):
		s = strings.TrimSuffix(strings.TrimPrefix(s, "*"), "*/")
	}

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimPrefix(s, ignoreDirective)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// some other directive sharing the prefix
		return ignoreRule{}, false
	}

	rule := ignoreRule{names: map[string]struct{}{}}

	for _, part := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		rule.names[strings.ToLower(part)] = struct{}{}
	}

	if len(rule.names) == 0 {
		return ignoreRule{all: true}, true
	}

	return rule, true
}

// fileIgnoreRule merges the directives found in the comment header that
// precedes the first statement of the file. A comment block attached to an
// export belongs to that export instead.
func fileIgnoreRule(text string) ignoreRule {
	var rule, group ignoreRule

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			mergeIgnoreRule(&rule, group)
			group = ignoreRule{}
		case isCommentLine(trimmed):
			if r, ok := parseIgnoreDirective(trimmed); ok {
				mergeIgnoreRule(&group, r)
			}
		default:
			if !strings.HasPrefix(trimmed, "export") {
				mergeIgnoreRule(&rule, group)
			}

			return rule
		}
	}

	mergeIgnoreRule(&rule, group)

	return rule
}

// handlerIgnoreRule merges the directives in the comment lines directly above
// the line holding offset.
func handlerIgnoreRule(text string, offset int) ignoreRule {
	var rule ignoreRule

	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	for lineStart > 0 {
		prevStart := strings.LastIndexByte(text[:lineStart-1], '\n') + 1

		trimmed := strings.TrimSpace(text[prevStart : lineStart-1])
		if !isCommentLine(trimmed) {
			break
		}

		if r, ok := parseIgnoreDirective(trimmed); ok {
			mergeIgnoreRule(&rule, r)
		}

		lineStart = prevStart
	}

	return rule
}

func ignored(text string, file ignoreRule, match m.Match) bool {
	return file.ignores(match.Name) || handlerIgnoreRule(text, match.Start).ignores(match.Name)
}
