package domain

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/paramfix/internal/adapter"
	"github.com/mouse-blink/paramfix/internal/controller"
	"github.com/mouse-blink/paramfix/internal/debug"
	m "github.com/mouse-blink/paramfix/internal/model"
)

// DiscoverArgs selects the route files a run works on.
type DiscoverArgs struct {
	Root     m.Path
	Filename string
	Exclude  []string
}

// FixArgs holds the arguments for a fix run.
type FixArgs struct {
	DiscoverArgs
	Indent   string
	DryRun   bool
	Verify   bool
	Parallel int
	Report   m.Path // optional YAML report destination
}

// ListArgs holds the arguments for listing candidates.
type ListArgs struct {
	DiscoverArgs
}

// ViewArgs holds the arguments for replaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// ErrNoReport is returned by View when no report path is configured.
var ErrNoReport = errors.New("no report path given")

// Workflow runs paramfix over a tree of route files.
type Workflow interface {
	Fix(args FixArgs) (m.Summary, error)
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	rewriter    Rewriter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	rewriter Rewriter,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		rewriter:    rewriter,
	}
}

// Fix rewrites every discovered route file. Failures of single files are
// recorded in the summary and never stop the run; only discovery, UI and
// report errors are returned.
func (w *workflow) Fix(args FixArgs) (m.Summary, error) {
	paths, err := w.discover(args.DiscoverArgs)
	if err != nil {
		return m.Summary{}, err
	}

	if err := w.ui.Start(controller.WithFixMode(len(paths))); err != nil {
		return m.Summary{}, fmt.Errorf("failed to start UI: %w", err)
	}

	summary := m.Summary{DryRun: args.DryRun}
	collector := newResultCollector(len(paths), func(result m.FileResult) {
		w.ui.DisplayResult(result)
		summary.Add(result)
	})

	var group errgroup.Group

	group.SetLimit(max(args.Parallel, 1))

	for i, path := range paths {
		group.Go(func() error {
			collector.put(i, w.fixFile(path, args))
			w.ui.Advance()

			return nil
		})
	}

	_ = group.Wait()

	w.ui.Close()
	w.ui.DisplaySummary(summary)

	debug.Debug("fix finished", "scanned", summary.Scanned, "fixed", summary.Fixed, "failed", summary.Failed)

	if args.Report != "" {
		if err := w.reportStore.SaveSummary(args.Report, summary); err != nil {
			return summary, fmt.Errorf("failed to save report: %w", err)
		}
	}

	return summary, nil
}

// List shows every discovered route file with the number of handlers that
// still need rewriting. Nothing is written.
func (w *workflow) List(args ListArgs) error {
	paths, err := w.discover(args.DiscoverArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	candidates := make([]m.Candidate, 0, len(paths))

	for _, path := range paths {
		content, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			candidates = append(candidates, m.Candidate{Path: path, Err: err})
			continue
		}

		res, err := w.rewriter.Rewrite(path, content, RewriteOptions{})
		if err != nil {
			candidates = append(candidates, m.Candidate{Path: path, Err: err})
			continue
		}

		candidates = append(candidates, m.Candidate{Path: path, Pending: res.Rewrites})
	}

	if err := w.ui.DisplayCandidates(candidates); err != nil {
		return fmt.Errorf("failed to display candidates: %w", err)
	}

	w.ui.Wait()

	return nil
}

// View replays a report written by an earlier Fix run.
func (w *workflow) View(args ViewArgs) error {
	if args.Report == "" {
		return ErrNoReport
	}

	report, err := w.reportStore.LoadSummary(args.Report)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	if err := w.ui.Start(controller.WithFixMode(0)); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	summary := m.Summary{DryRun: report.DryRun}

	for _, file := range report.Files {
		result := m.FileResult{
			Path:     m.Path(file.Path),
			Status:   m.FileStatus(file.Status),
			Rewrites: file.Rewrites,
			Warnings: file.ToWarnings(),
		}

		if file.Error != "" {
			result.Err = errors.New(file.Error)
		}

		w.ui.DisplayResult(result)
		summary.Add(result)
	}

	w.ui.Close()
	w.ui.DisplaySummary(summary)

	return nil
}

func (w *workflow) discover(args DiscoverArgs) ([]m.Path, error) {
	paths, err := w.fsAdapter.Discover(args.Root, args.Filename, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to discover route files: %w", err)
	}

	return paths, nil
}

func (w *workflow) fixFile(path m.Path, args FixArgs) m.FileResult {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileResult{Path: path, Status: m.StatusFailed, Err: err}
	}

	res, err := w.rewriter.Rewrite(path, content, RewriteOptions{Indent: args.Indent, Verify: args.Verify})
	if err != nil {
		return m.FileResult{Path: path, Status: m.StatusFailed, Err: err, Warnings: res.Warnings}
	}

	result := m.FileResult{
		Path:     path,
		Status:   m.StatusUnchanged,
		Rewrites: res.Rewrites,
		Warnings: res.Warnings,
	}

	if !res.Changed {
		return result
	}

	if args.DryRun {
		diff, err := unifiedDiff(path, content, res.Content)
		if err != nil {
			result.Status = m.StatusFailed
			result.Err = err

			return result
		}

		result.Status = m.StatusFixed
		result.Diff = diff

		return result
	}

	if err := w.fsAdapter.WriteFile(path, res.Content); err != nil {
		result.Status = m.StatusFailed
		result.Err = err

		return result
	}

	result.Status = m.StatusFixed

	return result
}

// resultCollector releases results in index order no matter in which order
// workers finish.
type resultCollector struct {
	mu      sync.Mutex
	results []m.FileResult
	ready   []bool
	next    int
	emit    func(m.FileResult)
}

func newResultCollector(n int, emit func(m.FileResult)) *resultCollector {
	return &resultCollector{
		results: make([]m.FileResult, n),
		ready:   make([]bool, n),
		emit:    emit,
	}
}

func (c *resultCollector) put(i int, result m.FileResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results[i] = result
	c.ready[i] = true

	for c.next < len(c.results) && c.ready[c.next] {
		c.emit(c.results[c.next])
		c.next++
	}
}
