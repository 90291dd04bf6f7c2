package lister

import (
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"checklist/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{name: "empty", out: "", want: nil},
		{name: "trailing terminator", out: "a.txt\x00b/c.go\x00", want: []string{"a.txt", "b/c.go"}},
		{name: "no trailing terminator", out: "a.txt\x00b/c.go", want: []string{"a.txt", "b/c.go"}},
		{name: "keeps git order", out: "z\x00a\x00", want: []string{"z", "a"}},
		{name: "single", out: "go.mod\x00", want: []string{"go.mod"}},
		{name: "non-ascii verbatim", out: "docs/\u00e9.md\x00", want: []string{"docs/\u00e9.md"}},
		{name: "space in name", out: "my notes.txt\x00", want: []string{"my notes.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutput([]byte(tt.out)))
		})
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}

func setupRepo(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init", "-q")
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f), 0644))
	}
	if len(files) > 0 {
		runGit(t, dir, "add", ".")
	}
	return dir
}

func TestGitLister(t *testing.T) {
	requireGit(t)

	t.Run("TrackedFiles", func(t *testing.T) {
		dir := setupRepo(t, "README.md", "src/lib/util.go", "src/main.go")
		// Untracked files are not listed.
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), nil, 0644))

		paths, err := NewGitLister(dir, nil).ListTrackedFiles()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"README.md", "src/lib/util.go", "src/main.go"}, paths)
	})

	t.Run("NonASCIINames", func(t *testing.T) {
		dir := setupRepo(t, "docs/a.md", "docs/\u00e9.md", "\u65e5\u672c/readme.txt")

		paths, err := NewGitLister(dir, nil).ListTrackedFiles()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"docs/a.md", "docs/\u00e9.md", "\u65e5\u672c/readme.txt"}, paths)
	})

	t.Run("EmptyRepository", func(t *testing.T) {
		dir := setupRepo(t)
		paths, err := NewGitLister(dir, nil).ListTrackedFiles()
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("NotARepository", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

		paths, err := NewGitLister(dir, nil).ListTrackedFiles()
		require.Error(t, err)
		assert.Nil(t, paths)
		assert.True(t, stderrors.Is(err, errors.ErrExternalTool))

		var exitErr *exec.ExitError
		assert.True(t, stderrors.As(err, &exitErr))
		assert.Contains(t, err.Error(), "git ls-files failed")
		// The exit status comes from the wrapped error only, once.
		assert.Equal(t, 1, strings.Count(err.Error(), "exit status"))
	})
}

func TestGitListerMissingBinary(t *testing.T) {
	g := NewGitLister(t.TempDir(), nil)
	g.Binary = "git-binary-that-does-not-exist"

	paths, err := g.ListTrackedFiles()
	require.Error(t, err)
	assert.Nil(t, paths)
	assert.True(t, stderrors.Is(err, errors.ErrExternalTool))
	assert.True(t, stderrors.Is(err, exec.ErrNotFound))
}
