package controller

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/mouse-blink/paramfix/internal/debug"
	m "github.com/mouse-blink/paramfix/internal/model"
)

var (
	fixedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	summaryStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// TUI implements UI for terminals: a progress bar while fixing and a
// Bubble Tea browser for long candidate lists.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
	input     io.Reader

	mu      sync.Mutex
	bar     *progressbar.ProgressBar
	program *tea.Program
	started bool
	done    chan struct{}
}

// NewTUI creates a new TUI writing results to output and progress to errOutput.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// Start initializes the UI for the given mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	if cfg.mode != ModeFix || cfg.total == 0 {
		return nil
	}

	t.bar = progressbar.NewOptions(cfg.total,
		progressbar.OptionSetWriter(t.errOutput),
		progressbar.OptionSetDescription("Fixing route files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(t.errOutput)
		}),
	)

	return nil
}

// Close stops the progress bar and any running program.
func (t *TUI) Close() {
	t.mu.Lock()
	bar := t.bar
	program := t.program
	done := t.done
	t.bar = nil
	t.mu.Unlock()

	if bar != nil {
		_ = bar.Finish()
	}

	if program != nil {
		program.Quit()
		<-done
	}
}

// Wait blocks until the interactive browser exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Advance moves the progress bar by one file.
func (t *TUI) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Add(1)
	}
}

// DisplayResult prints a styled line for fixed and failed files.
func (t *TUI) DisplayResult(result m.FileResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Clear()
	}

	switch result.Status {
	case m.StatusFailed:
		_, _ = fmt.Fprintf(t.errOutput, "%s %s: %v\n",
			failedStyle.Render("Error fixing"), pathStyle.Render(string(result.Path)), result.Err)
	case m.StatusFixed:
		if result.Diff != "" {
			_, _ = fmt.Fprint(t.output, result.Diff)
		} else {
			_, _ = fmt.Fprintf(t.output, "%s %s\n", fixedStyle.Render("Fixed:"), pathStyle.Render(string(result.Path)))
		}
	case m.StatusUnchanged:
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(t.errOutput, "%s %s:%d: %s\n",
			warnStyle.Render("Warning:"), result.Path, w.Line, w.Message)
	}
}

// DisplaySummary prints the final count line.
func (t *TUI) DisplaySummary(summary m.Summary) {
	line := fmt.Sprintf("Fixed %d files.", summary.Fixed)
	if summary.DryRun {
		line = fmt.Sprintf("Would fix %d files.", summary.Fixed)
	}

	if summary.Failed > 0 {
		line += " " + failedStyle.Render(fmt.Sprintf("%d failed.", summary.Failed))
	}

	_, _ = fmt.Fprintln(t.output, summaryStyle.Render(line))
}

// DisplayCandidates prints the candidate list, switching to the interactive
// browser when it does not fit on the screen.
func (t *TUI) DisplayCandidates(candidates []m.Candidate) error {
	msg := newCandidatesMsg(candidates)

	if _, height, ok := t.terminalSize(); !ok || len(candidates)+3 <= height {
		t.printCandidates(msg)
		return nil
	}

	if err := t.startWithModel(newListModel()); err != nil {
		return err
	}

	t.send(msg)

	return nil
}

func newCandidatesMsg(candidates []m.Candidate) candidatesMsg {
	msg := candidatesMsg{items: make([]candidateItem, 0, len(candidates))}

	for _, c := range candidates {
		msg.items = append(msg.items, candidateItem{path: string(c.Path), pending: c.Pending, failed: c.Err != nil})
		if c.Err == nil {
			msg.total += c.Pending
		}
	}

	return msg
}

func (t *TUI) printCandidates(msg candidatesMsg) {
	for _, item := range msg.items {
		count := fmt.Sprintf("%*d", countColumnWidth, item.pending)

		switch {
		case item.failed:
			count = failedStyle.Render(fmt.Sprintf("%*s", countColumnWidth, "error"))
		case item.pending > 0:
			count = warnStyle.Render(count)
		}

		_, _ = fmt.Fprintf(t.output, "%s  %s\n", count, pathStyle.Render(item.path))
	}

	_, _ = fmt.Fprintln(t.output, summaryStyle.Render(
		fmt.Sprintf("%d pending rewrites in %d files.", msg.total, len(msg.items))))
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			debug.Warn("interactive list stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}
