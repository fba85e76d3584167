package domain

import (
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// ExtractSurface collects the non-private instance methods and properties of
// every fragment, in fragment order then member order. Initializers are excluded.
func ExtractSurface(fragments []m.Declaration) []m.Operation {
	var operations []m.Operation

	for _, fragment := range fragments {
		for _, member := range fragment.Children {
			if operation, ok := surfaceOperation(member); ok {
				operations = append(operations, operation)
			}
		}
	}

	return operations
}

func surfaceOperation(member m.Declaration) (m.Operation, bool) {
	if member.IsHidden() || member.IsInitializer() {
		return m.Operation{}, false
	}

	name := member.ActualName()
	if name == "" {
		return m.Operation{}, false
	}

	switch member.Kind {
	case m.KindInstanceMethod:
		return m.Operation{
			Name:       name,
			Kind:       m.OperationMethod,
			Arguments:  methodArguments(member),
			ReturnType: member.TypeName,
		}, true
	case m.KindInstanceProperty:
		return m.Operation{
			Name:       name,
			Kind:       m.OperationProperty,
			ReturnType: member.TypeName,
		}, true
	default:
		return m.Operation{}, false
	}
}
