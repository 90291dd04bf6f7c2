// internal/lister/git.go
package lister

import (
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"checklist/internal/errors"

	"go.uber.org/zap"
)

// Lister yields repository-relative, slash-separated tracked file paths.
type Lister interface {
	ListTrackedFiles() ([]string, error)
}

// GitLister lists tracked files by running `git ls-files -z`. NUL
// termination keeps names verbatim; without it git quotes and octal-escapes
// non-ASCII names.
type GitLister struct {
	Dir    string // working directory; empty means the current one
	Binary string // git executable; empty means "git" from PATH
	Logger *zap.Logger
}

func NewGitLister(dir string, logger *zap.Logger) *GitLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitLister{
		Dir:    dir,
		Binary: "git",
		Logger: logger,
	}
}

// ListTrackedFiles blocks until git exits. Output waits for the process and
// releases it on every path, so nothing is left running on error.
func (g *GitLister) ListTrackedFiles() ([]string, error) {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := exec.Command(binary, "ls-files", "-z")
	cmd.Dir = g.Dir

	logger.Debug("listing tracked files",
		zap.String("binary", binary),
		zap.String("dir", g.Dir))

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			msg := fmt.Sprintf("%s ls-files failed", binary)
			if stderr != "" {
				msg = fmt.Sprintf("%s: %s", msg, stderr)
			}
			return nil, errors.ExternalTool(msg, err)
		}
		return nil, errors.ExternalTool(fmt.Sprintf("running %s ls-files", binary), err)
	}

	paths := ParseOutput(out)
	logger.Debug("listed tracked files", zap.Int("count", len(paths)))
	return paths, nil
}

// ParseOutput splits NUL-terminated git output into paths, dropping the
// empty entry left after the final terminator.
func ParseOutput(out []byte) []string {
	text := string(out)
	if text == "" {
		return nil
	}
	paths := strings.Split(text, "\x00")
	if paths[len(paths)-1] == "" {
		paths = paths[:len(paths)-1]
	}
	return paths
}
