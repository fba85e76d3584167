package domain

import (
	"context"
	"log/slog"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// Resolver substitutes dependency parameter types with test doubles found in a directory.
type Resolver interface {
	// Resolve returns a copy of params where every unresolved parameter whose
	// base type is listed in the conformances of a double under dir is
	// resolved to that double. The first double in enumeration order wins.
	// Already resolved parameters are never looked up, so Resolve is idempotent.
	Resolve(ctx context.Context, params m.Parameters, dir m.Path) m.Parameters
}

type resolver struct {
	adapter.SourceFSAdapter
	TreeLoader
}

// NewResolver creates a Resolver over the given filesystem and tree loader.
func NewResolver(fsAdapter adapter.SourceFSAdapter, loader TreeLoader) Resolver {
	return &resolver{
		SourceFSAdapter: fsAdapter,
		TreeLoader:      loader,
	}
}

func (r *resolver) Resolve(ctx context.Context, params m.Parameters, dir m.Path) m.Parameters {
	resolved := make(m.Parameters, len(params))
	copy(resolved, params)

	if len(resolved.Unresolved()) == 0 {
		return resolved
	}

	doubles := r.collectDoubles(ctx, dir)

	for i, param := range resolved {
		if param.IsResolved() {
			continue
		}

		base := param.BaseType()

		for _, double := range doubles {
			if double.ConformsTo(base) {
				resolved[i] = param.Resolve(double.Name)
				slog.Debug("Resolved parameter", "parameter", param.Name, "type", param.DeclaredType, "double", double.Name)

				break
			}
		}
	}

	return resolved
}

// collectDoubles returns the top-level double declarations under dir in
// enumeration order. An unreadable directory yields no doubles.
func (r *resolver) collectDoubles(ctx context.Context, dir m.Path) []m.Declaration {
	var doubles []m.Declaration

	err := walkTrees(ctx, r.SourceFSAdapter, r.TreeLoader, dir, func(file *m.File) bool {
		for _, decl := range file.Root.Children {
			if decl.IsDouble() {
				doubles = append(doubles, decl)
			}
		}

		return true
	})
	if err != nil {
		slog.Warn("Could not scan for test doubles", "dir", dir, "error", err)
	}

	return doubles
}
