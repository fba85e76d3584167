package model

// ResolutionState tracks whether a parameter is backed by a test double.
type ResolutionState int

const (
	// Unresolved parameters still use their declared type.
	Unresolved ResolutionState = iota
	// Resolved parameters are backed by a test double.
	Resolved
)

// Parameter is one initializer or method argument.
//
// Label is the external argument label; an empty Label means the argument is
// passed without one (declared with `_`).
type Parameter struct {
	Name         string
	Label        string
	DeclaredType string
	State        ResolutionState
	Double       string
}

// NewParameter creates a parameter, classifying types already named like a double as resolved.
func NewParameter(name, label, declaredType string) Parameter {
	p := Parameter{Name: name, Label: label, DeclaredType: declaredType}
	if base := StripOptionality(declaredType); IsDoubleName(base) {
		p.State = Resolved
		p.Double = base
	}

	return p
}

// IsResolved reports whether a double backs the parameter.
func (p Parameter) IsResolved() bool {
	return p.State == Resolved
}

// BaseType returns the declared type without optionality markers.
func (p Parameter) BaseType() string {
	return StripOptionality(p.DeclaredType)
}

// EffectiveType returns the double name when resolved, the declared type otherwise.
func (p Parameter) EffectiveType() string {
	if p.IsResolved() {
		return p.Double
	}

	return p.DeclaredType
}

// Resolve returns a copy backed by the given double. Resolution is monotonic:
// an already resolved parameter is returned unchanged.
func (p Parameter) Resolve(double string) Parameter {
	if p.IsResolved() {
		return p
	}

	p.State = Resolved
	p.Double = double

	return p
}

// Parameters is an ordered parameter list.
type Parameters []Parameter

// Unresolved returns the parameters that still need a double.
func (ps Parameters) Unresolved() Parameters {
	var out Parameters

	for _, p := range ps {
		if !p.IsResolved() {
			out = append(out, p)
		}
	}

	return out
}

// Resolved returns the parameters backed by a double.
func (ps Parameters) Resolved() Parameters {
	var out Parameters

	for _, p := range ps {
		if p.IsResolved() {
			out = append(out, p)
		}
	}

	return out
}

// BaseTypes returns the distinct base types in list order.
func (ps Parameters) BaseTypes() []string {
	seen := make(map[string]struct{}, len(ps))
	types := make([]string, 0, len(ps))

	for _, p := range ps {
		base := p.BaseType()
		if _, ok := seen[base]; ok {
			continue
		}

		seen[base] = struct{}{}
		types = append(types, base)
	}

	return types
}

// String renders the list as `(name: Type, ...)`.
func (ps Parameters) String() string {
	out := "("

	for i, p := range ps {
		if i > 0 {
			out += ", "
		}

		out += p.Name + ": " + p.EffectiveType()
	}

	return out + ")"
}
