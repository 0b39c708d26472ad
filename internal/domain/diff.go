package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/paramfix/internal/model"
)

// unifiedDiff renders a git-style unified diff between two versions of path.
func unifiedDiff(path m.Path, before, after []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", path, err)
	}

	return diff, nil
}
