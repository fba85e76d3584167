package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/controller"
	"unitgen.dev/pkg/unitgen/internal/domain/scaffold"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	scaffoldFileMode os.FileMode = 0o644

	annotationSuffix = "+AutoMockable" + scaffold.FileExtension
)

// GenerateArgs contains the arguments for generating a test scaffold.
type GenerateArgs struct {
	TypeName        string
	Root            m.Path
	MocksDir        m.Path
	FileName        string
	OutputDir       m.Path
	Imports         []string
	TestableImports []string
	Platform        string
	Doubles         bool
	DryRun          bool
}

// InspectArgs contains the arguments for inspecting a type.
type InspectArgs struct {
	TypeName string
	Root     m.Path
	MocksDir m.Path
	Format   controller.ReportFormat
}

// Workflow defines the scaffold generation workflow.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Inspect(ctx context.Context, args InspectArgs) (m.Report, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Locator
	Resolver
	generator    adapter.DoubleGenerator
	initializers *InitializerExtractor
}

// analysis is what both workflows learn about the requested type.
type analysis struct {
	match      m.Match
	source     m.InitializerSource
	params     m.Parameters
	operations []m.Operation
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	generator adapter.DoubleGenerator,
	ui controller.UI,
	locator Locator,
	resolver Resolver,
	initializers *InitializerExtractor,
) Workflow {
	if initializers == nil {
		initializers = NewInitializerExtractor()
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Locator:         locator,
		Resolver:        resolver,
		generator:       generator,
		initializers:    initializers,
	}
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if strings.TrimSpace(args.TypeName) == "" {
		return ErrEmptyTypeName
	}

	if err := w.Start(ctx, controller.WithGenerateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayRequest(ctx, controller.Request{
		TypeName:        args.TypeName,
		Root:            args.Root,
		MocksDir:        args.MocksDir,
		Imports:         args.Imports,
		TestableImports: args.TestableImports,
	})

	result, err := w.analyze(ctx, args.TypeName, args.Root)
	if err != nil {
		return err
	}

	className := scaffold.ClassName(args.TypeName, args.FileName)
	target := w.JoinPath(string(args.OutputDir), className+scaffold.FileExtension)

	if args.Doubles && len(result.params) > 0 {
		result.params = w.resolveDoubles(ctx, result.params, args, className)
	}

	plan := scaffold.NewPlan(className, args.TypeName, args.Imports, args.TestableImports, result.params, result.operations)
	plan.Platform = args.Platform

	content, err := scaffold.Render(plan)
	if err != nil {
		slog.Error("Failed to render scaffold", "type", args.TypeName, "error", err)
		return err
	}

	file := m.GeneratedFile{Path: target, Content: content}

	if args.DryRun {
		return w.DisplayScaffold(ctx, file, w.diffAgainstExisting(ctx, file), true)
	}

	if err := w.WriteFile(ctx, target, content, scaffoldFileMode); err != nil {
		slog.Error("Failed to write scaffold", "path", target, "error", err)
		return fmt.Errorf("write scaffold: %w", err)
	}

	slog.Info("Wrote scaffold", "path", target, "tests", len(plan.Operations))

	return w.DisplayScaffold(ctx, file, "", false)
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) (m.Report, error) {
	if strings.TrimSpace(args.TypeName) == "" {
		return m.Report{}, ErrEmptyTypeName
	}

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Report{}, err
	}
	defer w.Close(ctx)

	w.DisplayRequest(ctx, controller.Request{TypeName: args.TypeName, Root: args.Root, MocksDir: args.MocksDir})

	result, err := w.analyze(ctx, args.TypeName, args.Root)
	if err != nil {
		return m.Report{}, err
	}

	if len(result.params) > 0 {
		result.params = w.Resolve(ctx, result.params, args.Root)
		w.DisplayDoubles(ctx, m.PassExisting, result.params)

		if args.MocksDir != "" && len(result.params.Unresolved()) > 0 {
			result.params = w.Resolve(ctx, result.params, w.JoinPath(string(args.Root), string(args.MocksDir)))
		}
	}

	report := m.NewReport(result.match, result.source, result.params, result.operations)

	if err := w.DisplayReport(ctx, report, args.Format); err != nil {
		return report, fmt.Errorf("display report: %w", err)
	}

	return report, nil
}

// analyze locates the type and extracts its initializer and surface.
func (w *workflow) analyze(ctx context.Context, typeName string, root m.Path) (analysis, error) {
	match, err := w.Locate(ctx, root, typeName)
	if err != nil {
		if errors.Is(err, ErrTypeNotFound) {
			w.DisplayNotFound(ctx, typeName)
		}

		slog.Error("Failed to locate type", "type", typeName, "root", root, "error", err)

		return analysis{}, fmt.Errorf("locate %s: %w", typeName, err)
	}

	w.DisplayMatch(ctx, match)

	params, source := w.initializers.Extract(match.Primary, match.File)
	w.DisplayInitializer(ctx, source, params)

	return analysis{
		match:      match,
		source:     source,
		params:     params,
		operations: ExtractSurface(match.Declarations()),
	}, nil
}

// resolveDoubles runs the existing-doubles pass, generates doubles for what
// is still unresolved and runs the generated-doubles pass. The annotation
// source is placed under the root because that is all the generator scans.
func (w *workflow) resolveDoubles(ctx context.Context, params m.Parameters, args GenerateArgs, className string) m.Parameters {
	params = w.Resolve(ctx, params, args.Root)
	w.DisplayDoubles(ctx, m.PassExisting, params)

	missing := params.Unresolved().BaseTypes()
	if len(missing) == 0 {
		return params
	}

	if args.DryRun {
		slog.Info("Skipping double generation on dry run", "types", missing)
		return params
	}

	mocksDir := w.JoinPath(string(args.Root), string(args.MocksDir))

	if err := w.generator.Available(ctx); err != nil {
		slog.Warn("Double generator unavailable", "error", err)
		w.DisplayDoubleGeneration(ctx, missing, "", err)
	} else {
		output, genErr := w.generator.Generate(ctx, m.DoubleRequest{
			Root:            args.Root,
			OutputDir:       mocksDir,
			AnnotationPath:  w.JoinPath(string(args.Root), className+annotationSuffix),
			Types:           missing,
			Imports:         args.Imports,
			TestableImports: args.TestableImports,
		})
		if genErr != nil {
			slog.Warn("Double generation failed, continuing with existing doubles", "error", genErr)
		}

		w.DisplayDoubleGeneration(ctx, missing, output, genErr)
	}

	params = w.Resolve(ctx, params, mocksDir)
	w.DisplayDoubles(ctx, m.PassGenerated, params)

	return params
}

// diffAgainstExisting returns a unified diff from the scaffold already on
// disk to file, or "" when nothing exists yet.
func (w *workflow) diffAgainstExisting(ctx context.Context, file m.GeneratedFile) string {
	existing, err := w.ReadFile(ctx, file.Path)
	if err != nil {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(file.Content)),
		FromFile: string(file.Path),
		ToFile:   string(file.Path) + " (generated)",
		Context:  3,
	})
	if err != nil {
		slog.Warn("Failed to diff scaffold", "path", file.Path, "error", err)
		return ""
	}

	return diff
}
