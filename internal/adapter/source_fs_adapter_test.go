package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/paramfix/internal/model"
)

func TestLocalSourceFSAdapter_Discover(t *testing.T) {
	t.Run("finds route files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := examplePath(t, "basic")

		paths, err := adapter.Discover(m.Path(root), "route.ts", nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "app/api/chores/[id]/approve/route.ts")),
			m.Path(filepath.Join(root, "app/api/chores/[id]/route.ts")),
			m.Path(filepath.Join(root, "app/api/chores/route.ts")),
			m.Path(filepath.Join(root, "app/api/legacy/[id]/route.ts")),
			m.Path(filepath.Join(root, "app/api/projects/tasks/[taskId]/route.ts")),
			m.Path(filepath.Join(root, "app/api/users/[id]/posts/[slug]/route.ts")),
		}, paths)
	})

	t.Run("skips node_modules and other filenames", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := examplePath(t, "basic")

		paths, err := adapter.Discover(m.Path(root), "route.ts", nil)
		require.NoError(t, err)

		for _, path := range paths {
			assert.NotContains(t, string(path), "node_modules")
			assert.Equal(t, "route.ts", filepath.Base(string(path)))
		}
	})

	t.Run("exclude globs prune directories and files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := examplePath(t, "basic")

		paths, err := adapter.Discover(m.Path(root), "route.ts", []string{"app/api/legacy/**", "**/approve/route.ts"})
		require.NoError(t, err)

		assert.Len(t, paths, 4)
		for _, path := range paths {
			assert.NotContains(t, string(path), "legacy")
			assert.NotContains(t, string(path), "approve")
		}
	})

	t.Run("custom filename", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := examplePath(t, "basic")

		paths, err := adapter.Discover(m.Path(root), "handler.ts", nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "app/api/chores/[id]/handler.ts"))}, paths)
	})

	t.Run("root may be a single file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeMemFile(t, fs, "api/route.ts", "export {}\n")
		adapter := NewSourceFSAdapter(fs)

		paths, err := adapter.Discover("api/route.ts", "route.ts", nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"api/route.ts"}, paths)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		adapter := NewSourceFSAdapter(afero.NewMemMapFs())

		_, err := adapter.Discover("app/api", "route.ts", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("invalid glob is an error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeMemFile(t, fs, "app/api/route.ts", "export {}\n")
		adapter := NewSourceFSAdapter(fs)

		_, err := adapter.Discover("app/api", "route.ts", []string{"[unclosed"})
		require.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("empty tree yields empty list", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("app/api", 0o755))
		adapter := NewSourceFSAdapter(fs)

		paths, err := adapter.Discover("app/api", "route.ts", nil)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "export async function GET() {}\n"
	writeMemFile(t, fs, "app/api/route.ts", content)
	adapter := NewSourceFSAdapter(fs)

	got, err := adapter.ReadFile("app/api/route.ts")
	require.NoError(t, err)

	assert.Equal(t, content, string(got))

	_, err = adapter.ReadFile("app/api/missing.ts")
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	t.Run("keeps file mode", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "route.ts", []byte("old"), 0o640))
		adapter := NewSourceFSAdapter(fs)

		require.NoError(t, adapter.WriteFile("route.ts", []byte("new")))

		got, err := afero.ReadFile(fs, "route.ts")
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		info, err := fs.Stat("route.ts")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		adapter := NewSourceFSAdapter(afero.NewMemMapFs())

		err := adapter.WriteFile("route.ts", []byte("new"))
		assert.Error(t, err)
	})

	t.Run("read only filesystem", func(t *testing.T) {
		base := afero.NewMemMapFs()
		writeMemFile(t, base, "route.ts", "old")
		adapter := NewSourceFSAdapter(afero.NewReadOnlyFs(base))

		err := adapter.WriteFile("route.ts", []byte("new"))
		assert.Error(t, err)
	})
}

func TestNormalizeRootPath(t *testing.T) {
	got, err := normalizeRootPath("")
	require.NoError(t, err)
	assert.Equal(t, ".", got)

	got, err = normalizeRootPath("app/api/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("app/api"), got)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err = normalizeRootPath("~/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "project"), got)
}

func writeMemFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0o644))
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}
