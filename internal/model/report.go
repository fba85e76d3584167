package model

// Report is the serializable summary of a type inspection.
type Report struct {
	TypeName    string            `json:"type" yaml:"type"`
	Kind        string            `json:"kind" yaml:"kind"`
	Path        Path              `json:"path" yaml:"path"`
	Fragments   []ReportFragment  `json:"fragments" yaml:"fragments"`
	Initializer string            `json:"initializer" yaml:"initializer"`
	Parameters  []ReportParameter `json:"parameters" yaml:"parameters"`
	Operations  []ReportOperation `json:"operations" yaml:"operations"`
}

// ReportFragment is one declaration contributing to the type.
type ReportFragment struct {
	Kind string `json:"kind" yaml:"kind"`
	Path Path   `json:"path" yaml:"path"`
}

// ReportParameter is one initializer or method argument.
type ReportParameter struct {
	Name   string `json:"name" yaml:"name"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Type   string `json:"type" yaml:"type"`
	Double string `json:"double,omitempty" yaml:"double,omitempty"`
}

// ReportOperation is one testable member.
type ReportOperation struct {
	Name      string            `json:"name" yaml:"name"`
	Kind      string            `json:"kind" yaml:"kind"`
	Arguments []ReportParameter `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Returns   string            `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// NewReport summarizes a match and what was extracted from it.
func NewReport(match Match, source InitializerSource, params Parameters, operations []Operation) Report {
	report := Report{
		TypeName:    match.TypeName,
		Kind:        match.Primary.Kind.String(),
		Initializer: source.String(),
		Parameters:  reportParameters(params),
	}

	if match.File != nil {
		report.Path = match.File.Path
	}

	for _, fragment := range match.Fragments {
		report.Fragments = append(report.Fragments, ReportFragment{
			Kind: fragment.Declaration.Kind.String(),
			Path: fragment.Path,
		})
	}

	for _, op := range operations {
		kind := "method"
		if op.Kind == OperationProperty {
			kind = "property"
		}

		report.Operations = append(report.Operations, ReportOperation{
			Name:      op.Name,
			Kind:      kind,
			Arguments: reportParameters(op.Arguments),
			Returns:   op.ReturnType,
		})
	}

	return report
}

func reportParameters(params Parameters) []ReportParameter {
	if len(params) == 0 {
		return nil
	}

	out := make([]ReportParameter, 0, len(params))
	for _, p := range params {
		rp := ReportParameter{Name: p.Name, Label: p.Label, Type: p.DeclaredType}
		if p.IsResolved() {
			rp.Double = p.Double
		}

		out = append(out, rp)
	}

	return out
}
