package signature

import m "github.com/mouse-blink/paramfix/internal/model"

// Report summarizes one Transform call.
type Report struct {
	Outcomes []m.Outcome // one per located signature, in textual order
	Rewrites int
	Warnings []m.Warning // ascending by line
}

// Transform rewrites every handler in text. Matches are applied last to first
// so the offsets of earlier matches stay valid. Text without a matching
// signature comes back identical.
//
// Handlers preceded by a `// paramfix:ignore` comment, or named in such a
// comment in the file header, are left alone.
func Transform(text string, opts Options) (string, Report) {
	matches := Locate(text)
	report := Report{Outcomes: make([]m.Outcome, len(matches))}
	fileRule := fileIgnoreRule(text)

	for i := len(matches) - 1; i >= 0; i-- {
		if ignored(text, fileRule, matches[i]) {
			report.Outcomes[i] = m.OutcomeIgnored
			continue
		}

		matchOpts := opts
		if i+1 < len(matches) {
			matchOpts.Bound = matches[i+1].Start
		}

		var res Result

		text, res = Apply(text, matches[i], matchOpts)
		report.Outcomes[i] = res.Outcome

		if res.Outcome.Changed() {
			report.Rewrites++
		}

		if len(res.Warnings) > 0 {
			report.Warnings = append(res.Warnings, report.Warnings...)
		}
	}

	return text, report
}
