// Package domain holds the paramfix use cases: rewriting one route file and
// running the rewrite over a tree.
package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/paramfix/internal/adapter"
	"github.com/mouse-blink/paramfix/internal/debug"
	"github.com/mouse-blink/paramfix/internal/domain/signature"
	m "github.com/mouse-blink/paramfix/internal/model"
)

// ErrSyntaxRegression is returned when a rewrite introduces syntax errors the
// original file did not have.
var ErrSyntaxRegression = errors.New("rewrite introduced syntax errors")

// RewriteOptions tunes a single rewrite.
type RewriteOptions struct {
	Indent string
	Verify bool // parse the output and reject syntax regressions
}

// RewriteResult is the outcome of rewriting one file.
type RewriteResult struct {
	Content  []byte
	Changed  bool
	Rewrites int
	Warnings []m.Warning
}

// Rewriter converts route handlers in one file to await their params.
type Rewriter interface {
	Rewrite(path m.Path, content []byte, opts RewriteOptions) (RewriteResult, error)
}

type rewriter struct {
	checker adapter.SyntaxChecker
}

// NewRewriter creates a Rewriter. checker may be nil, in which case
// verification is skipped.
func NewRewriter(checker adapter.SyntaxChecker) Rewriter {
	return &rewriter{checker: checker}
}

// Rewrite transforms content and, when asked to, verifies the result parses
// no worse than the input.
func (r *rewriter) Rewrite(path m.Path, content []byte, opts RewriteOptions) (RewriteResult, error) {
	sigOpts := signature.DefaultOptions()
	if opts.Indent != "" {
		sigOpts.Indent = opts.Indent
	}

	out, report := signature.Transform(string(content), sigOpts)

	if debug.Enabled() {
		for i, outcome := range report.Outcomes {
			debug.Debug("handler", "path", path, "index", i, "outcome", string(outcome))
		}
	}

	result := RewriteResult{
		Content:  []byte(out),
		Changed:  out != string(content),
		Rewrites: report.Rewrites,
		Warnings: report.Warnings,
	}

	if !result.Changed || !opts.Verify || r.checker == nil {
		return result, nil
	}

	if err := r.verify(content, result.Content); err != nil {
		return RewriteResult{Content: content, Warnings: report.Warnings}, err
	}

	return result, nil
}

func (r *rewriter) verify(before, after []byte) error {
	hadErrors, err := r.checker.HasErrors(before)
	if err != nil {
		return fmt.Errorf("failed to parse original: %w", err)
	}

	hasErrors, err := r.checker.HasErrors(after)
	if err != nil {
		return fmt.Errorf("failed to parse rewrite: %w", err)
	}

	if hasErrors && !hadErrors {
		return ErrSyntaxRegression
	}

	return nil
}
