package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/paramfix/internal/model"
)

// RunReport is the persisted form of a run summary.
type RunReport struct {
	GeneratedAt time.Time    `yaml:"generated_at"`
	DryRun      bool         `yaml:"dry_run"`
	Scanned     int          `yaml:"scanned"`
	Fixed       int          `yaml:"fixed"`
	Failed      int          `yaml:"failed"`
	Files       []FileReport `yaml:"files"`
}

// FileReport is one file entry of a RunReport.
type FileReport struct {
	Path     string          `yaml:"path"`
	Status   string          `yaml:"status"`
	Rewrites int             `yaml:"rewrites,omitempty"`
	Error    string          `yaml:"error,omitempty"`
	Warnings []WarningReport `yaml:"warnings,omitempty"`
}

// WarningReport is one warning of a FileReport.
type WarningReport struct {
	Line    int    `yaml:"line"`
	Message string `yaml:"message"`
}

// ToWarnings converts the persisted warnings back to model warnings.
func (f FileReport) ToWarnings() []m.Warning {
	if len(f.Warnings) == 0 {
		return nil
	}

	warnings := make([]m.Warning, 0, len(f.Warnings))
	for _, w := range f.Warnings {
		warnings = append(warnings, m.Warning{Line: w.Line, Message: w.Message})
	}

	return warnings
}

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveSummary(path m.Path, summary m.Summary) error
	LoadSummary(path m.Path) (RunReport, error)
}

// LocalReportStore writes YAML reports through an afero.Fs.
type LocalReportStore struct {
	fs  afero.Fs
	now func() time.Time
}

// NewReportStore constructs a ReportStore on the OS filesystem.
func NewReportStore() *LocalReportStore {
	return NewReportStoreFs(afero.NewOsFs())
}

// NewReportStoreFs constructs a ReportStore on fs.
func NewReportStoreFs(fs afero.Fs) *LocalReportStore {
	return &LocalReportStore{fs: fs, now: time.Now}
}

// SaveSummary writes summary as YAML to path, creating parent directories.
func (rs *LocalReportStore) SaveSummary(path m.Path, summary m.Summary) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	report := RunReport{
		GeneratedAt: rs.now().UTC(),
		DryRun:      summary.DryRun,
		Scanned:     summary.Scanned,
		Fixed:       summary.Fixed,
		Failed:      summary.Failed,
		Files:       make([]FileReport, 0, len(summary.Results)),
	}

	for _, result := range summary.Results {
		file := FileReport{
			Path:     string(result.Path),
			Status:   string(result.Status),
			Rewrites: result.Rewrites,
		}

		if result.Err != nil {
			file.Error = result.Err.Error()
		}

		for _, w := range result.Warnings {
			file.Warnings = append(file.Warnings, WarningReport{Line: w.Line, Message: w.Message})
		}

		report.Files = append(report.Files, file)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := rs.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := afero.WriteFile(rs.fs, string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// LoadSummary reads a report written by SaveSummary.
func (rs *LocalReportStore) LoadSummary(path m.Path) (RunReport, error) {
	data, err := afero.ReadFile(rs.fs, string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return RunReport{}, fmt.Errorf("report %s not found: %w", path, err)
		}

		return RunReport{}, err
	}

	var report RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return RunReport{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return report, nil
}
