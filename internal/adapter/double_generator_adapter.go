package adapter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

//go:embed templates/AutoMockable.stencil
var autoMockableTemplate []byte

const (
	autoMockableTemplateName = "AutoMockable.stencil"
	autoMockableProtocol     = "AutoMockable"
	buildOutputDir           = ".build"
)

// ErrAnnotationExists is returned instead of overwriting a file at the annotation path.
var ErrAnnotationExists = errors.New("annotation file already exists")

// DoubleGenerator is the external test-double generation collaborator invoked
// between the two resolver passes.
type DoubleGenerator interface {
	// Available reports whether the generator can be run at all.
	Available(ctx context.Context) error

	// Generate produces doubles for the requested types and blocks until done.
	// Returns the tool's combined output.
	Generate(ctx context.Context, req m.DoubleRequest) (string, error)
}

// SourceryAdapter generates doubles by running Sourcery with an embedded
// AutoMockable template.
type SourceryAdapter struct {
	fs      SourceFSAdapter
	process ProcessAdapter
	binary  string
}

// NewSourceryAdapter constructs a SourceryAdapter using the given binary.
func NewSourceryAdapter(fs SourceFSAdapter, process ProcessAdapter, binary string) *SourceryAdapter {
	if binary == "" {
		binary = "sourcery"
	}

	return &SourceryAdapter{fs: fs, process: process, binary: binary}
}

// Available checks that the Sourcery binary can be found.
func (a *SourceryAdapter) Available(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := a.process.LookPath(a.binary); err != nil {
		return err
	}

	return nil
}

// Generate annotates the requested types, materializes the template and runs Sourcery.
func (a *SourceryAdapter) Generate(ctx context.Context, req m.DoubleRequest) (string, error) {
	if len(req.Types) == 0 {
		return "", nil
	}

	if _, err := a.fs.FileInfo(ctx, req.AnnotationPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAnnotationExists, req.AnnotationPath)
	}

	if err := a.fs.WriteFile(ctx, req.AnnotationPath, Annotations(req.Types), 0o600); err != nil {
		return "", fmt.Errorf("write annotations: %w", err)
	}

	defer func() {
		if err := a.fs.RemoveAll(ctx, req.AnnotationPath); err != nil {
			slog.Error("Failed to remove annotations", "path", req.AnnotationPath, "error", err)
		}
	}()

	templatesDir, err := a.fs.CreateTempDir(ctx, "unitgen-templates-*")
	if err != nil {
		return "", fmt.Errorf("create templates dir: %w", err)
	}

	defer func() {
		if err := a.fs.RemoveAll(ctx, templatesDir); err != nil {
			slog.Error("Failed to cleanup templates dir", "dir", templatesDir, "error", err)
		}
	}()

	templatePath := a.fs.JoinPath(string(templatesDir), autoMockableTemplateName)
	if err := a.fs.WriteFile(ctx, templatePath, autoMockableTemplate, 0o600); err != nil {
		return "", fmt.Errorf("write template: %w", err)
	}

	args := SourceryArgs(req, templatePath, a.fs.JoinPath(string(req.Root), buildOutputDir))

	output, err := a.process.Run(ctx, "", a.binary, args...)
	if err != nil {
		return output, fmt.Errorf("sourcery: %w", err)
	}

	return output, nil
}

// Annotations renders the source that marks each type as AutoMockable.
func Annotations(types []string) []byte {
	lines := []string{"protocol " + autoMockableProtocol + " {}"}

	for _, t := range types {
		name := m.StripOptionality(t)
		if name == "" || m.IsDoubleName(name) {
			continue
		}

		lines = append(lines, fmt.Sprintf("extension %s: %s {}", name, autoMockableProtocol))
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}

// SourceryArgs builds the Sourcery command line for a request.
func SourceryArgs(req m.DoubleRequest, templatePath, excluded m.Path) []string {
	args := []string{
		"--sources", string(req.Root),
		"--exclude-sources", string(excluded),
		"--templates", string(templatePath),
		"--output", string(req.OutputDir),
	}

	for _, imp := range req.Imports {
		args = append(args, "--args", "imports="+imp)
	}

	for _, imp := range req.TestableImports {
		args = append(args, "--args", "testable_imports="+imp)
	}

	return args
}
