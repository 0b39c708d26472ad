package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/paramfix/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, &buf)
	tui.input = strings.NewReader("")

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// a second start is ignored
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	tui.send(candidatesMsg{total: 1})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, &buf)

	tui.send(candidatesMsg{total: 1})
	tui.Wait()
	tui.Close()
}

func TestTUI_FixModeProgressAndResults(t *testing.T) {
	var out, errOut bytes.Buffer
	tui := NewTUI(&out, &errOut)

	if err := tui.Start(WithFixMode(2)); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.Advance()
	tui.DisplayResult(m.FileResult{Path: "app/api/a/route.ts", Status: m.StatusFixed})
	tui.Advance()
	tui.DisplayResult(m.FileResult{
		Path:     "app/api/b/route.ts",
		Status:   m.StatusFailed,
		Err:      errors.New("boom"),
		Warnings: []m.Warning{{Line: 3, Message: "no fields"}},
	})
	tui.Close()
	tui.DisplaySummary(m.Summary{Scanned: 2, Fixed: 1, Failed: 1})

	stdout := out.String()
	for _, want := range []string{"Fixed:", "app/api/a/route.ts", "Fixed 1 files.", "1 failed."} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("stdout missing %q\nstdout:\n%s", want, stdout)
		}
	}

	stderr := errOut.String()
	for _, want := range []string{"Error fixing", "app/api/b/route.ts", "boom", "Warning:", "app/api/b/route.ts:3: no fields"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("stderr missing %q\nstderr:\n%s", want, stderr)
		}
	}
}

func TestTUI_DisplaySummary_DryRun(t *testing.T) {
	var out bytes.Buffer
	tui := NewTUI(&out, &out)

	tui.DisplaySummary(m.Summary{DryRun: true, Fixed: 4})

	if !strings.Contains(out.String(), "Would fix 4 files.") {
		t.Fatalf("summary = %q", out.String())
	}
}

func TestTUI_DisplayCandidates_PrintsWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer
	tui := NewTUI(&out, &out)

	err := tui.DisplayCandidates([]m.Candidate{
		{Path: "app/api/a/route.ts", Pending: 2},
		{Path: "app/api/b/route.ts", Pending: 1},
		{Path: "app/api/c/route.ts", Err: errors.New("boom")},
	})
	if err != nil {
		t.Fatalf("DisplayCandidates error = %v", err)
	}

	output := out.String()
	for _, want := range []string{"app/api/a/route.ts", "app/api/c/route.ts", "error", "3 pending rewrites in 3 files."} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if tui.program != nil {
		t.Fatal("interactive program started for non-terminal output")
	}
}

func TestNewCandidatesMsg_SkipsFailedInTotal(t *testing.T) {
	msg := newCandidatesMsg([]m.Candidate{
		{Path: "a", Pending: 2},
		{Path: "b", Pending: 5, Err: errors.New("read")},
	})

	if msg.total != 2 {
		t.Fatalf("total = %d, want 2", msg.total)
	}

	if len(msg.items) != 2 || !msg.items[1].failed {
		t.Fatalf("items = %+v", msg.items)
	}
}
