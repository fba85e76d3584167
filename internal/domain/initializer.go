package domain

import (
	"log/slog"
	"strings"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// InitializerStrategy derives initializer parameters from one declaration.
type InitializerStrategy interface {
	Applies(decl m.Declaration) bool
	Parameters(decl m.Declaration, file *m.File) m.Parameters
	Source() m.InitializerSource
}

// InitializerExtractor tries each strategy in order and keeps the first
// non-empty parameter list.
type InitializerExtractor struct {
	strategies []InitializerStrategy
}

// NewInitializerExtractor creates an extractor using the explicit initializer
// first and memberwise inference for structs second.
func NewInitializerExtractor() *InitializerExtractor {
	return &InitializerExtractor{
		strategies: []InitializerStrategy{
			ExplicitInitializer{},
			MemberwiseInitializer{},
		},
	}
}

// Extract returns the ordered initializer parameters of the primary declaration.
func (e *InitializerExtractor) Extract(primary m.Declaration, file *m.File) (m.Parameters, m.InitializerSource) {
	for _, strategy := range e.strategies {
		if !strategy.Applies(primary) {
			continue
		}

		if params := strategy.Parameters(primary, file); len(params) > 0 {
			return params, strategy.Source()
		}
	}

	return nil, m.InitializerNone
}

// ExplicitInitializer reads the parameters of the first declared init method.
type ExplicitInitializer struct{}

// Applies is true for every declaration.
func (ExplicitInitializer) Applies(m.Declaration) bool { return true }

// Source reports InitializerExplicit.
func (ExplicitInitializer) Source() m.InitializerSource { return m.InitializerExplicit }

// Parameters returns the labelled parameters of the first init child.
func (ExplicitInitializer) Parameters(decl m.Declaration, _ *m.File) m.Parameters {
	for _, child := range decl.Children {
		if child.IsInitializer() {
			return methodArguments(child)
		}
	}

	return nil
}

// MemberwiseInitializer reconstructs the synthesized memberwise initializer of
// a struct from its stored properties, using the raw source text to spot
// default values.
type MemberwiseInitializer struct{}

// Applies is true for structs only.
func (MemberwiseInitializer) Applies(decl m.Declaration) bool { return decl.Kind == m.KindStruct }

// Source reports InitializerMemberwise.
func (MemberwiseInitializer) Source() m.InitializerSource { return m.InitializerMemberwise }

// Parameters lists stored, non-lazy, non-defaulted properties in declaration order.
func (MemberwiseInitializer) Parameters(decl m.Declaration, file *m.File) m.Parameters {
	var params m.Parameters

	for _, child := range decl.Children {
		if child.Kind != m.KindInstanceProperty || child.IsComputed() || child.Lazy {
			continue
		}

		if child.Span == nil {
			slog.Debug("Skipping property without span", "property", child.Name)
			continue
		}

		text, ok := file.Text(*child.Span)
		if !ok {
			slog.Debug("Skipping property with out of range span", "property", child.Name, "offset", child.Span.Offset)
			continue
		}

		if hasDefaultValue(text) || child.Name == "" || child.TypeName == "" {
			continue
		}

		params = append(params, m.NewParameter(child.Name, child.Name, child.TypeName))
	}

	return params
}

// hasDefaultValue reports whether a property declaration provides its own
// value: an initializer expression, or an optional var (implicitly nil).
func hasDefaultValue(text string) bool {
	if strings.Contains(text, "=") {
		return true
	}

	trimmed := strings.TrimSpace(text)

	return declaresVar(trimmed) && strings.HasSuffix(trimmed, "?")
}

var propertyModifiers = map[string]struct{}{
	"public": {}, "open": {}, "internal": {}, "fileprivate": {}, "private": {},
	"weak": {}, "unowned": {}, "final": {}, "override": {}, "nonisolated": {},
	"dynamic": {}, "required": {},
}

// declaresVar reports whether the first keyword after attributes and modifiers is `var`.
func declaresVar(text string) bool {
	for _, field := range strings.Fields(text) {
		if strings.HasPrefix(field, "@") {
			continue
		}

		if base, _, ok := strings.Cut(field, "("); ok {
			field = base
		}

		if _, ok := propertyModifiers[field]; ok {
			continue
		}

		return field == "var"
	}

	return false
}
