package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestNewParameter(t *testing.T) {
	tests := []struct {
		declared string
		resolved bool
		double   string
	}{
		{"NetworkService", false, ""},
		{"NetworkServiceMock", true, "NetworkServiceMock"},
		{"ClockStub?", true, "ClockStub"},
		{"storemock!", true, "storemock"},
		{"Hammock", true, "Hammock"},
		{"MockService", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			p := m.NewParameter("dependency", "dependency", tt.declared)

			assert.Equal(t, tt.resolved, p.IsResolved())
			assert.Equal(t, tt.double, p.Double)
			assert.Equal(t, tt.declared, p.DeclaredType)
		})
	}
}

func TestParameter_Resolve(t *testing.T) {
	p := m.NewParameter("service", "", "Service?")

	assert.Equal(t, "Service", p.BaseType())
	assert.Equal(t, "Service?", p.EffectiveType())

	resolved := p.Resolve("ServiceMock")
	assert.True(t, resolved.IsResolved())
	assert.Equal(t, "ServiceMock", resolved.EffectiveType())
	assert.False(t, p.IsResolved(), "Resolve returns a copy")

	again := resolved.Resolve("ServiceStub")
	assert.Equal(t, "ServiceMock", again.Double, "resolution never changes once set")
}

func TestParameters(t *testing.T) {
	params := m.Parameters{
		m.NewParameter("a", "a", "Service"),
		m.NewParameter("b", "", "ClockMock"),
		m.NewParameter("c", "c", "Service?"),
		m.NewParameter("d", "d", "Int!"),
	}

	assert.Equal(t, []string{"b"}, names(params.Resolved()))
	assert.Equal(t, []string{"a", "c", "d"}, names(params.Unresolved()))
	assert.Equal(t, []string{"Service", "Int"}, params.Unresolved().BaseTypes())
	assert.Equal(t, "(a: Service, b: ClockMock, c: Service?, d: Int!)", params.String())
	assert.Equal(t, "()", m.Parameters{}.String())
}

func names(params m.Parameters) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.Name)
	}

	return out
}
