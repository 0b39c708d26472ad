package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/paramfix/internal/model"
)

func newTestReportStore(fs afero.Fs) *LocalReportStore {
	rs := NewReportStoreFs(fs)
	rs.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return rs
}

func sampleSummary() m.Summary {
	var summary m.Summary

	summary.Add(m.FileResult{Path: "app/api/a/route.ts", Status: m.StatusFixed, Rewrites: 2})
	summary.Add(m.FileResult{Path: "app/api/b/route.ts", Status: m.StatusUnchanged,
		Warnings: []m.Warning{{Line: 4, Message: "GET: params promise declares no typed fields"}}})
	summary.Add(m.FileResult{Path: "app/api/c/route.ts", Status: m.StatusFailed, Err: errors.New("permission denied")})

	return summary
}

func TestLocalReportStore_SaveSummary_WritesYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	rs := newTestReportStore(fs)

	require.NoError(t, rs.SaveSummary("reports/run.yaml", sampleSummary()))

	data, err := afero.ReadFile(fs, "reports/run.yaml")
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))

	assert.Equal(t, 3, raw["scanned"])
	assert.Equal(t, 1, raw["fixed"])
	assert.Equal(t, 1, raw["failed"])
	assert.Contains(t, string(data), "error: permission denied")
	assert.Contains(t, string(data), "line: 4")
	assert.Contains(t, string(data), "GET: params promise declares no typed fields")
	assert.Contains(t, string(data), "generated_at: 2026-01-02T03:04:05Z")
}

func TestLocalReportStore_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	rs := newTestReportStore(fs)

	require.NoError(t, rs.SaveSummary("run.yaml", sampleSummary()))

	report, err := rs.LoadSummary("run.yaml")
	require.NoError(t, err)

	require.Len(t, report.Files, 3)
	assert.Equal(t, "app/api/a/route.ts", report.Files[0].Path)
	assert.Equal(t, "fixed", report.Files[0].Status)
	assert.Equal(t, 2, report.Files[0].Rewrites)
	assert.Equal(t, "failed", report.Files[2].Status)
	assert.Equal(t, "permission denied", report.Files[2].Error)
	assert.Equal(t, []m.Warning{{Line: 4, Message: "GET: params promise declares no typed fields"}}, report.Files[1].ToWarnings())
	assert.Nil(t, report.Files[0].ToWarnings())
}

func TestLocalReportStore_SaveSummary_EmptyPath(t *testing.T) {
	rs := newTestReportStore(afero.NewMemMapFs())

	assert.Error(t, rs.SaveSummary("", m.Summary{}))
}

func TestLocalReportStore_LoadSummary_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	rs := newTestReportStore(fs)

	_, err := rs.LoadSummary("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	require.NoError(t, afero.WriteFile(fs, "broken.yaml", []byte("files: [unterminated"), 0o600))

	_, err = rs.LoadSummary("broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse report")
}
