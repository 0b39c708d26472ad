package model

// FileStatus is the final state of one processed file.
type FileStatus string

const (
	// StatusFixed means the file content changed (and was written unless
	// running dry).
	StatusFixed FileStatus = "fixed"
	// StatusUnchanged means nothing needed rewriting.
	StatusUnchanged FileStatus = "unchanged"
	// StatusFailed means reading, rewriting or writing the file failed.
	StatusFailed FileStatus = "failed"
)

// FileResult holds the outcome of processing a single route file.
type FileResult struct {
	Path     Path
	Status   FileStatus
	Err      error
	Rewrites int       // number of handlers changed
	Warnings []Warning // degradations that did not stop the rewrite
	Diff     string    // unified diff, populated on dry runs only
}

// Summary accumulates the results of one run in discovery order.
type Summary struct {
	DryRun  bool
	Scanned int
	Fixed   int
	Failed  int
	Results []FileResult
}

// Add records a file result and updates the counters.
func (s *Summary) Add(result FileResult) {
	s.Scanned++

	switch result.Status {
	case StatusFixed:
		s.Fixed++
	case StatusFailed:
		s.Failed++
	case StatusUnchanged:
	}

	s.Results = append(s.Results, result)
}
