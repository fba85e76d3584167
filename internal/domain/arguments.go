package domain

import (
	"log/slog"
	"strings"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

const wildcardLabel = "_"

// methodLabels splits the label signature of a method name, e.g.
// "f(a:_:c:)" -> ["a", "_", "c"]. Empty segments are dropped.
func methodLabels(name string) []string {
	open := strings.IndexByte(name, '(')
	closing := strings.LastIndexByte(name, ')')

	if open < 0 || closing < 0 || closing-open-1 < 2 {
		return nil
	}

	var labels []string

	for _, label := range strings.Split(name[open+1:closing], ":") {
		if label != "" {
			labels = append(labels, label)
		}
	}

	return labels
}

// methodArguments pairs a method's parameter children with its labels
// positionally; the shorter of the two lists wins.
func methodArguments(method m.Declaration) m.Parameters {
	labels := methodLabels(method.Name)

	var params []m.Declaration

	for _, child := range method.Children {
		if child.Kind == m.KindParameter {
			params = append(params, child)
		}
	}

	args := make(m.Parameters, 0, min(len(labels), len(params)))

	for i := 0; i < len(labels) && i < len(params); i++ {
		param := params[i]
		if param.Name == "" || param.TypeName == "" {
			slog.Debug("Skipping parameter without name or type", "method", method.Name, "index", i)
			continue
		}

		label := labels[i]
		if label == wildcardLabel {
			label = ""
		}

		args = append(args, m.NewParameter(param.Name, label, param.TypeName))
	}

	return args
}
