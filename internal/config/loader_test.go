package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "paramfix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("filename", "route.ts", "")
	flags.StringArray("exclude", nil, "")
	flags.Int("parallel", 1, "")
	flags.Bool("verify", false, "")

	return flags
}

func TestLoader_Defaults(t *testing.T) {
	dir := t.TempDir()
	l := &loader{searchDir: dir}

	cfg, err := l.Load()
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Root, cfg.Root)
	assert.Equal(t, defaults.Filename, cfg.Filename)
	assert.Equal(t, defaults.Indent, cfg.Indent)
	assert.Equal(t, defaults.Parallel, cfg.Parallel)
	assert.Empty(t, cfg.Exclude)
	assert.False(t, cfg.Verify)
	assert.Empty(t, cfg.Report)
}

func TestLoader_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
root: src/app/api
exclude:
  - "legacy/**"
parallel: 4
verify: true
report: reports/paramfix.yaml
`)

	cfg, err := NewLoader(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, "src/app/api", cfg.Root)
	assert.Equal(t, "route.ts", cfg.Filename)
	assert.Equal(t, []string{"legacy/**"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Parallel)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "reports/paramfix.yaml", cfg.Report)
}

func TestLoader_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".paramfix.yaml"), []byte("filename: page.ts\n"), 0o600))

	l := &loader{searchDir: dir}

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "page.ts", cfg.Filename)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "parallel: 2\n")
	t.Setenv("PARAMFIX_PARALLEL", "6")

	cfg, err := NewLoader(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Parallel)
}

func TestLoader_ChangedFlagsWin(t *testing.T) {
	path := writeConfig(t, "parallel: 2\nfilename: page.ts\n")
	t.Setenv("PARAMFIX_PARALLEL", "6")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--parallel", "3", "--exclude", "a/**", "--exclude", "b/**"}))

	cfg, err := NewLoader(path, flags).Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Parallel)
	assert.Equal(t, []string{"a/**", "b/**"}, cfg.Exclude)
	assert.Equal(t, "page.ts", cfg.Filename, "unchanged flag must not shadow the file")
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), nil).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_InvalidValues(t *testing.T) {
	path := writeConfig(t, "parallel: 0\n")

	_, err := NewLoader(path, nil).Load()

	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{name: "defaults", modify: func(*Config) {}, ok: true},
		{name: "tab indent", modify: func(c *Config) { c.Indent = "\t" }, ok: true},
		{name: "empty filename", modify: func(c *Config) { c.Filename = " " }},
		{name: "filename with separator", modify: func(c *Config) { c.Filename = "api/route.ts" }},
		{name: "zero parallel", modify: func(c *Config) { c.Parallel = 0 }},
		{name: "non blank indent", modify: func(c *Config) { c.Indent = "xx" }},
		{name: "bad glob", modify: func(c *Config) { c.Exclude = []string{"[oops"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
