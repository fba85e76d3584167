package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

var (
	// ErrTypeNotFound is returned when no class or struct carries the requested name.
	ErrTypeNotFound = errors.New("type not found")
	// ErrEmptyTypeName is returned when no type name was requested.
	ErrEmptyTypeName = errors.New("type name is empty")
)

// Locator finds the declaration of a named type across a source tree.
type Locator interface {
	// Locate returns the first class/struct named typeName under root (in
	// lexical path order) and every class/struct/extension fragment sharing
	// the name. Returns ErrTypeNotFound when no class/struct matched.
	Locate(ctx context.Context, root m.Path, typeName string) (m.Match, error)
}

type locator struct {
	adapter.SourceFSAdapter
	TreeLoader
}

// NewLocator creates a Locator over the given filesystem and tree loader.
func NewLocator(fsAdapter adapter.SourceFSAdapter, loader TreeLoader) Locator {
	return &locator{
		SourceFSAdapter: fsAdapter,
		TreeLoader:      loader,
	}
}

func (l *locator) Locate(ctx context.Context, root m.Path, typeName string) (m.Match, error) {
	if strings.TrimSpace(typeName) == "" {
		return m.Match{}, ErrEmptyTypeName
	}

	match := m.Match{TypeName: typeName}
	found := false

	err := walkTrees(ctx, l.SourceFSAdapter, l.TreeLoader, root, func(file *m.File) bool {
		for _, decl := range file.Root.Children {
			if decl.Name != typeName || !decl.IsFragment() {
				continue
			}

			match.Fragments = append(match.Fragments, m.Fragment{Path: file.Path, Declaration: decl})

			if decl.IsTypeLike() {
				if !found {
					found = true
					match.Primary = decl
					match.File = file

					continue
				}

				slog.Warn("Ambiguous type name, keeping first match",
					"type", typeName, "kept", match.File.Path, "ignored", file.Path)
			}
		}

		return true
	})
	if err != nil {
		return m.Match{}, err
	}

	if !found {
		return m.Match{}, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
	}

	slog.Info("Located type", "type", typeName, "path", match.File.Path, "fragments", len(match.Fragments))

	return match, nil
}
