// Package checklist wires the tracked-file lister to the tree renderer.
package checklist

import (
	"fmt"
	"io"

	"checklist/internal/lister"
	"checklist/internal/tree"

	"go.uber.org/zap"
)

type Generator struct {
	Lister lister.Lister
	Logger *zap.Logger
}

func NewGenerator(l lister.Lister, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Lister: l, Logger: logger}
}

// Generate lists, folds and renders the tracked files.
func (g *Generator) Generate() (string, error) {
	paths, err := g.Lister.ListTrackedFiles()
	if err != nil {
		return "", fmt.Errorf("listing tracked files: %w", err)
	}

	root, err := tree.Build(paths)
	if err != nil {
		return "", fmt.Errorf("building tree: %w", err)
	}

	g.Logger.Debug("built tree",
		zap.Int("paths", len(paths)),
		zap.Int("nodes", root.Len()))

	return tree.Render(root), nil
}

// WriteTo renders the whole checklist before writing, so w receives either
// the full checklist or nothing.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	out, err := g.Generate()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	if err != nil {
		return int64(n), fmt.Errorf("writing checklist: %w", err)
	}
	return int64(n), nil
}
