package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// StructureAdapter produces the structured declaration document of a source
// file. The engine never parses source text itself; it only decodes what this
// collaborator returns.
type StructureAdapter interface {
	// Structure returns the raw structure document (SourceKitten JSON) for path.
	Structure(ctx context.Context, path m.Path) ([]byte, error)
}

// SourceKittenAdapter runs `sourcekitten structure --file <path>`.
type SourceKittenAdapter struct {
	process ProcessAdapter
	binary  string
}

// NewSourceKittenAdapter constructs a SourceKittenAdapter using the given binary.
func NewSourceKittenAdapter(process ProcessAdapter, binary string) *SourceKittenAdapter {
	if binary == "" {
		binary = "sourcekitten"
	}

	return &SourceKittenAdapter{process: process, binary: binary}
}

// Structure runs SourceKitten against a single file.
func (a *SourceKittenAdapter) Structure(ctx context.Context, path m.Path) ([]byte, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	out, err := a.process.Stdout(ctx, "", a.binary, "structure", "--file", abs)
	if err != nil {
		return nil, fmt.Errorf("sourcekitten structure %s: %w", path, err)
	}

	return out, nil
}
