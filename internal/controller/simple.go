package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/paramfix/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; there is nothing interactive to wait for.
func (s *SimpleUI) Wait() {
}

// Advance is a no-op for plain output.
func (s *SimpleUI) Advance() {
}

// DisplayResult prints one line per fixed or failed file, the dry-run diff
// when present, and any warnings.
func (s *SimpleUI) DisplayResult(result m.FileResult) {
	switch result.Status {
	case m.StatusFailed:
		s.errorf("Error fixing %s: %v\n", result.Path, result.Err)
	case m.StatusFixed:
		if result.Diff != "" {
			s.printf("%s", result.Diff)
		} else {
			s.printf("Fixed: %s\n", result.Path)
		}
	case m.StatusUnchanged:
	}

	for _, w := range result.Warnings {
		s.errorf("Warning: %s:%d: %s\n", result.Path, w.Line, w.Message)
	}
}

// DisplaySummary prints the final count line.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	if summary.DryRun {
		s.printf("\nWould fix %d files.\n", summary.Fixed)
		return
	}

	s.printf("\nFixed %d files.\n", summary.Fixed)
}

// DisplayCandidates prints a table of route files and their pending rewrites.
func (s *SimpleUI) DisplayCandidates(candidates []m.Candidate) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	pending := 0

	for _, c := range candidates {
		if c.Err != nil {
			table.Append([]string{string(c.Path), "error"})
			s.errorf("Error reading %s: %v\n", c.Path, c.Err)

			continue
		}

		table.Append([]string{string(c.Path), fmt.Sprintf("%d", c.Pending)})

		pending += c.Pending
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(candidates)),
		fmt.Sprintf("%d", pending),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
