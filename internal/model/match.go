package model

// Outcome describes what the applier did with a single matched signature.
type Outcome string

const (
	// OutcomeRewritten means a destructuring statement was inserted and the
	// body's params.<field> accesses were replaced.
	OutcomeRewritten Outcome = "rewritten"
	// OutcomeAwaitAdded means an existing destructure of params was missing
	// its await keyword and got one.
	OutcomeAwaitAdded Outcome = "await-added"
	// OutcomeAlreadyApplied means the body already awaits params.
	OutcomeAlreadyApplied Outcome = "already-applied"
	// OutcomeSkippedNoFields means the promise's object type yielded no
	// field names.
	OutcomeSkippedNoFields Outcome = "skipped-no-fields"
	// OutcomeSkippedNoBody means no body delimiter follows the signature.
	OutcomeSkippedNoBody Outcome = "skipped-no-body"
	// OutcomeIgnored means a paramfix:ignore comment excluded the handler.
	OutcomeIgnored Outcome = "ignored"
)

// Changed reports whether the outcome modified the text.
func (o Outcome) Changed() bool {
	return o == OutcomeRewritten || o == OutcomeAwaitAdded
}

// Match is one located handler signature. Start and End are byte offsets of
// the matched signature; End is one past the closing parenthesis of the
// parameter list.
type Match struct {
	Start  int
	End    int
	Name   string
	Fields []string // declaration order, unique
	// Partial is set when a member's type runs into another member, as with
	// newline-only separators, so Fields misses names.
	Partial bool
}

// FunctionSpan delimits a handler from its signature to one past the closing
// brace of its body. Balanced is false when the body never closed and End was
// clamped to the end of the text.
type FunctionSpan struct {
	Start    int
	End      int
	Balanced bool
}

// Warning is a non-fatal finding about a file, such as an unparsable type
// body or an unterminated function body.
type Warning struct {
	Line    int
	Message string
}
