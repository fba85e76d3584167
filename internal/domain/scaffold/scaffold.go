// Package scaffold renders XCTest scaffolds for a located type.
package scaffold

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// FileExtension is appended to the scaffold class name to build its file name.
const FileExtension = ".swift"

// Plan is everything the scaffold template needs.
type Plan struct {
	ClassName       string
	TypeName        string
	Platform        string
	Imports         []string
	TestableImports []string
	Parameters      m.Parameters
	Operations      []Test
}

// Test is one generated test method.
type Test struct {
	m.Operation
	TestName string
}

// ClassName returns the test case class name: fileName when set, <TypeName>Tests otherwise.
func ClassName(typeName, fileName string) string {
	fileName = strings.TrimSuffix(strings.TrimSpace(fileName), FileExtension)
	if fileName != "" {
		return fileName
	}

	return typeName + "Tests"
}

// NewPlan builds a Plan, giving overloaded operations distinct test names.
func NewPlan(className, typeName string, imports, testableImports []string, params m.Parameters, operations []m.Operation) Plan {
	seen := make(map[string]int, len(operations))
	tests := make([]Test, 0, len(operations))

	for _, op := range operations {
		seen[op.Name]++

		name := "test_" + op.Name
		if n := seen[op.Name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}

		tests = append(tests, Test{Operation: op, TestName: name})
	}

	return Plan{
		ClassName:       className,
		TypeName:        typeName,
		Imports:         imports,
		TestableImports: testableImports,
		Parameters:      params,
		Operations:      tests,
	}
}

const scaffoldTemplate = `// Auto-Generated by unitgen

import Foundation
{{- if .Platform}}
import {{.Platform}}
{{- end}}
import XCTest
{{- if or .Imports .TestableImports}}
{{range .Imports}}
import {{.}}
{{- end}}
{{- range .TestableImports}}
@testable import {{.}}
{{- end}}
{{- end}}

final class {{.ClassName}}: XCTestCase {

    // System under test
    private var sut: {{.TypeName}}!
{{- if .Parameters}}
    // Dependencies
{{- range .Parameters}}
    private var {{.Name}}: {{.EffectiveType}}!
{{- end}}
{{- end}}

    override func setUp() {
        super.setUp()
{{- range .Parameters}}
        {{.Name}} = {{.EffectiveType}}()
{{- end}}
        sut = {{.TypeName}}({{callArguments .Parameters}})
    }

    override func tearDown() {
        super.tearDown()
        sut = nil
{{- range .Parameters}}
        {{.Name}} = nil
{{- end}}
    }

    // MARK: - Tests
{{- range .Operations}}

    func {{.TestName}}() throws {
        // given
{{- range .Arguments}}
        let {{.Name}}: {{.DeclaredType}} = {{placeholder .DeclaredType}}
{{- end}}
{{- if .HasReturn}}
        let expectedResult: {{.ReturnType}} = {{placeholder .ReturnType}}
{{- end}}

        // when
        {{if .HasReturn}}let result = {{end}}sut.{{.Name}}{{if .HasArguments}}({{callArguments .Arguments}}){{end}}

        // then
{{- if .HasReturn}}
        XCTAssertEqual(result, expectedResult)
{{- end}}
    }
{{- end}}
}
`

var tmpl = template.Must(template.New("scaffold").Funcs(template.FuncMap{
	"callArguments": callArguments,
	"placeholder":   placeholder,
}).Parse(scaffoldTemplate))

// Render executes the scaffold template.
func Render(plan Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, plan); err != nil {
		return nil, fmt.Errorf("render scaffold for %s: %w", plan.TypeName, err)
	}

	return buf.Bytes(), nil
}

// callArguments renders `label: name` pairs, or bare names for unlabelled arguments.
func callArguments(params m.Parameters) string {
	parts := make([]string, 0, len(params))

	for _, p := range params {
		if p.Label == "" {
			parts = append(parts, p.Name)
			continue
		}

		parts = append(parts, p.Label+": "+p.Name)
	}

	return strings.Join(parts, ", ")
}

// placeholder renders an Xcode editor placeholder.
func placeholder(content string) string {
	return "<#" + content + "#>"
}
