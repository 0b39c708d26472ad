// Package signature locates route handlers that take a promise-wrapped params
// object and rewrites them to await and destructure it. Everything here works
// on plain text: there is no TypeScript grammar, only a signature pattern and
// a literal-aware brace scanner.
package signature

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/paramfix/internal/model"
)

// signaturePattern matches
//
//	export async function NAME(first, { ..params.. }: { ..; params: Promise<{ MEMBERS }> })
//
// Group 1 is NAME, group 2 is MEMBERS.
var signaturePattern = regexp.MustCompile(
	`export\s+async\s+function\s+([A-Za-z_$][\w$]*)\s*\(` +
		`\s*[^,(){}]+,` +
		`\s*\{[^{}]*\bparams\b[^{}]*\}\s*:\s*` +
		`\{[^{}]*?\bparams\s*\??\s*:\s*Promise\s*<\s*\{([^{}]*)\}\s*>[^{}]*\}` +
		`\s*,?\s*\)`,
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// runOnMemberPattern finds a `name:` starting a new line inside a member's
// type text.
var runOnMemberPattern = regexp.MustCompile(`\n\s*[A-Za-z_$][\w$]*\s*\??\s*:`)

// Locate returns every handler signature in text, left to right. A match
// whose member list yields no field names is still returned, with nil Fields.
func Locate(text string) []m.Match {
	locs := signaturePattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]m.Match, 0, len(locs))
	for _, loc := range locs {
		typeBody := text[loc[4]:loc[5]]

		matches = append(matches, m.Match{
			Start:   loc[0],
			End:     loc[1],
			Name:    text[loc[2]:loc[3]],
			Fields:  FieldNames(typeBody),
			Partial: hasRunOnMember(typeBody),
		})
	}

	return matches
}

// FieldNames extracts member names from an inline object type body such as
// "id: string, slug: string". Members without a type annotation, or whose
// name is not a plain identifier, are dropped. Optional markers are removed
// and duplicates keep their first position.
func FieldNames(typeBody string) []string {
	members := strings.FieldsFunc(typeBody, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var names []string

	seen := make(map[string]struct{}, len(members))

	for _, member := range members {
		name, _, ok := strings.Cut(strings.TrimSpace(member), ":")
		if !ok {
			continue
		}

		name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "?"))
		if !identifierPattern.MatchString(name) {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// hasRunOnMember reports whether a member of typeBody carries another member
// in its type text because no comma or semicolon separates them.
func hasRunOnMember(typeBody string) bool {
	for _, member := range strings.FieldsFunc(typeBody, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if _, typ, ok := strings.Cut(member, ":"); ok && runOnMemberPattern.MatchString(typ) {
			return true
		}
	}

	return false
}
