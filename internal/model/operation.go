package model

// OperationKind distinguishes methods from properties in the capability surface.
type OperationKind int

const (
	// OperationMethod is an instance method; it always carries an argument list (possibly empty).
	OperationMethod OperationKind = iota
	// OperationProperty is an instance property; it carries no argument list.
	OperationProperty
)

// Operation is one testable unit found on the target type or its extensions.
type Operation struct {
	Name       string
	Kind       OperationKind
	Arguments  Parameters
	ReturnType string
}

// HasArguments reports whether the operation is invoked with an argument list.
func (o Operation) HasArguments() bool {
	return o.Kind == OperationMethod
}

// HasReturn reports whether the operation yields a value.
func (o Operation) HasReturn() bool {
	return o.ReturnType != ""
}
