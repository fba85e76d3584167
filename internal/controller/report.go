package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// ParseReportFormat validates a format name.
func ParseReportFormat(value string) (ReportFormat, error) {
	format := ReportFormat(strings.ToLower(strings.TrimSpace(value)))
	if format == "" {
		return FormatTable, nil
	}

	for _, known := range ReportFormats {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("unsupported report format %q", value)
}

func renderReport(w io.Writer, report m.Report, format ReportFormat) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(report)
	case FormatDump:
		_, err := io.WriteString(w, spew.Sdump(report))
		return err
	case FormatTable, "":
		_, err := io.WriteString(w, renderReportTables(report))
		return err
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func renderReportTables(report m.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%s)\n\n", report.Kind, report.TypeName, report.Path)

	b.WriteString(newTable([]string{"Fragment", "Path"}, func(table *tablewriter.Table) {
		for _, fragment := range report.Fragments {
			table.Append([]string{fragment.Kind, string(fragment.Path)})
		}
	}))

	fmt.Fprintf(&b, "\nInitializer: %s\n", report.Initializer)

	if len(report.Parameters) > 0 {
		b.WriteString(newTable([]string{"Name", "Label", "Type", "Double"}, func(table *tablewriter.Table) {
			for _, p := range report.Parameters {
				table.Append([]string{p.Name, labelOrWildcard(p.Label), p.Type, p.Double})
			}
		}))
	}

	b.WriteString("\n")

	b.WriteString(newTable([]string{"Operation", "Kind", "Arguments", "Returns"}, func(table *tablewriter.Table) {
		for _, op := range report.Operations {
			table.Append([]string{op.Name, op.Kind, formatArguments(op), op.Returns})
		}

		table.SetFooter([]string{fmt.Sprintf("Total %d", len(report.Operations)), "", "", ""})
	}))

	return b.String()
}

func newTable(header []string, fill func(*tablewriter.Table)) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	fill(table)
	table.Render()

	return tableBuffer.String()
}

func formatArguments(op m.ReportOperation) string {
	if op.Kind != "method" {
		return ""
	}

	parts := make([]string, 0, len(op.Arguments))
	for _, arg := range op.Arguments {
		parts = append(parts, fmt.Sprintf("%s %s: %s", labelOrWildcard(arg.Label), arg.Name, arg.Type))
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func labelOrWildcard(label string) string {
	if label == "" {
		return "_"
	}

	return label
}
