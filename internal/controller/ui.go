// Package controller provides output adapters for displaying scaffold generation progress.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// ReportFormat selects how an inspection report is printed.
type ReportFormat string

// Available ReportFormat values.
const (
	FormatTable ReportFormat = "table"
	FormatYAML  ReportFormat = "yaml"
	FormatJSON  ReportFormat = "json"
	FormatDump  ReportFormat = "dump"
)

// ReportFormats lists the accepted formats in help order.
var ReportFormats = []ReportFormat{FormatTable, FormatYAML, FormatJSON, FormatDump}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithGenerateMode sets the UI to scaffold generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithInspectMode sets the UI to inspection mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeGenerate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// Request describes what the user asked for.
type Request struct {
	TypeName        string
	Root            m.Path
	MocksDir        m.Path
	Imports         []string
	TestableImports []string
}

// UI defines the interface for reporting pipeline progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRequest(ctx context.Context, request Request)
	DisplayNotFound(ctx context.Context, typeName string)
	DisplayMatch(ctx context.Context, match m.Match)
	DisplayInitializer(ctx context.Context, source m.InitializerSource, params m.Parameters)
	DisplayDoubles(ctx context.Context, pass m.ResolverPass, params m.Parameters)
	DisplayDoubleGeneration(ctx context.Context, types []string, output string, err error)
	DisplayScaffold(ctx context.Context, file m.GeneratedFile, diff string, dryRun bool) error
	DisplayReport(ctx context.Context, report m.Report, format ReportFormat) error
}

// NewUI picks the TUI for terminals and the plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
