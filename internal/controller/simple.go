package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayRequest echoes the request.
func (s *SimpleUI) DisplayRequest(ctx context.Context, request Request) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", requestText(request))
}

// DisplayNotFound reports that the type is missing.
func (s *SimpleUI) DisplayNotFound(ctx context.Context, typeName string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Did not find %s anywhere :(\n", typeName)
}

// DisplayMatch reports where the type was found.
func (s *SimpleUI) DisplayMatch(ctx context.Context, match m.Match) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", matchText(match))
}

// DisplayInitializer reports the derived initializer signature.
func (s *SimpleUI) DisplayInitializer(ctx context.Context, source m.InitializerSource, params m.Parameters) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", initializerText(source, params))

	if len(params) > 0 {
		s.printf("%s", renderParametersTable(params))
	}
}

// DisplayDoubles lists parameters backed by doubles after a resolver pass.
func (s *SimpleUI) DisplayDoubles(ctx context.Context, pass m.ResolverPass, params m.Parameters) {
	if err := ctx.Err(); err != nil {
		return
	}

	if text := doublesText(pass, params); text != "" {
		s.printf("%s\n", text)
	}
}

// DisplayDoubleGeneration reports the outcome of the double generator.
func (s *SimpleUI) DisplayDoubleGeneration(ctx context.Context, types []string, output string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("Generating doubles for: %s\n", strings.Join(types, ", "))

	if strings.TrimSpace(output) != "" {
		s.printf("%s\n", strings.TrimRight(output, "\n"))
	}

	if err != nil {
		s.printf("Double generation failed: %v. Continuing with existing doubles.\n", err)
		return
	}

	s.printf("Done generating doubles!\n")
}

// DisplayScaffold reports the written scaffold or prints it on dry runs.
func (s *SimpleUI) DisplayScaffold(ctx context.Context, file m.GeneratedFile, diff string, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeScaffold(s.cmd.OutOrStdout(), file, diff, dryRun)
}

// DisplayReport prints an inspection report in the requested format.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return renderReport(s.cmd.OutOrStdout(), report, format)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func requestText(request Request) string {
	return fmt.Sprintf(`You entered: type name = %s,
             search root = %s,
             folder for generated doubles = %s,
             additional imports = [%s],
             additional testable imports = [%s].
`,
		request.TypeName, request.Root, request.MocksDir,
		strings.Join(request.Imports, ", "), strings.Join(request.TestableImports, ", "))
}

func matchText(match m.Match) string {
	path := m.Path("")
	if match.File != nil {
		path = match.File.Path
	}

	text := fmt.Sprintf("Found %s %s in file %s\n", match.Primary.Kind, match.TypeName, path)
	if extra := len(match.Fragments) - 1; extra > 0 {
		text += fmt.Sprintf("Found %d more fragment(s) of %s\n", extra, match.TypeName)
	}

	return text
}

func initializerText(source m.InitializerSource, params m.Parameters) string {
	switch source {
	case m.InitializerExplicit:
		return "Found init method with params: " + params.String()
	case m.InitializerMemberwise:
		return "Inferred memberwise init with params: " + params.String()
	default:
		return "Did not find init method and could not infer it. Initialization with no parameters will be used."
	}
}

func doublesText(pass m.ResolverPass, params m.Parameters) string {
	resolved := params.Resolved()
	if len(resolved) == 0 {
		return ""
	}

	return fmt.Sprintf("Found %s doubles for params: %s", pass, resolved.String())
}

func writeScaffold(w io.Writer, file m.GeneratedFile, diff string, dryRun bool) error {
	if !dryRun {
		_, err := fmt.Fprintf(w, "Created file %s\n", file.Path)
		return err
	}

	if _, err := fmt.Fprintf(w, "Scaffold for %s (dry run, nothing written):\n\n%s\n", file.Path, file.Content); err != nil {
		return err
	}

	if diff == "" {
		return nil
	}

	_, err := fmt.Fprintf(w, "Changes against the existing file:\n%s", diff)

	return err
}

func renderParametersTable(params m.Parameters) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Label", "Type", "Double"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, p := range params {
		label := p.Label
		if label == "" {
			label = "_"
		}

		double := ""
		if p.IsResolved() {
			double = p.Double
		}

		table.Append([]string{p.Name, label, p.DeclaredType, double})
	}

	table.Render()

	return tableBuffer.String()
}
