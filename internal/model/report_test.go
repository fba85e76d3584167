package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestNewReport(t *testing.T) {
	class := m.Declaration{Kind: m.KindClass, Name: "Cart"}
	match := m.Match{
		TypeName: "Cart",
		Primary:  class,
		File:     &m.File{Path: "Sources/Cart.swift"},
		Fragments: []m.Fragment{
			{Path: "Sources/Cart.swift", Declaration: class},
			{Path: "Sources/Cart+Totals.swift", Declaration: m.Declaration{Kind: m.KindExtension, Name: "Cart"}},
		},
	}
	params := m.Parameters{
		m.NewParameter("store", "store", "Store").Resolve("StoreMock"),
		m.NewParameter("clock", "", "Clock"),
	}
	operations := []m.Operation{
		{Name: "add", Kind: m.OperationMethod, Arguments: m.Parameters{m.NewParameter("item", "", "Item")}},
		{Name: "total", Kind: m.OperationProperty, ReturnType: "Double"},
	}

	report := m.NewReport(match, m.InitializerExplicit, params, operations)

	assert.Equal(t, "Cart", report.TypeName)
	assert.Equal(t, "class", report.Kind)
	assert.Equal(t, m.Path("Sources/Cart.swift"), report.Path)
	assert.Equal(t, "explicit", report.Initializer)
	assert.Equal(t, []m.ReportFragment{
		{Kind: "class", Path: "Sources/Cart.swift"},
		{Kind: "extension", Path: "Sources/Cart+Totals.swift"},
	}, report.Fragments)
	assert.Equal(t, []m.ReportParameter{
		{Name: "store", Label: "store", Type: "Store", Double: "StoreMock"},
		{Name: "clock", Type: "Clock"},
	}, report.Parameters)

	require.Len(t, report.Operations, 2)
	assert.Equal(t, "method", report.Operations[0].Kind)
	assert.Equal(t, []m.ReportParameter{{Name: "item", Type: "Item"}}, report.Operations[0].Arguments)
	assert.Equal(t, "property", report.Operations[1].Kind)
	assert.Equal(t, "Double", report.Operations[1].Returns)
	assert.Nil(t, report.Operations[1].Arguments)
}

func TestNewReport_NoFile(t *testing.T) {
	report := m.NewReport(m.Match{TypeName: "Ghost"}, m.InitializerNone, nil, nil)

	assert.Empty(t, report.Path)
	assert.Equal(t, "none", report.Initializer)
	assert.Nil(t, report.Parameters)
}

func TestInitializerSourceAndPassNames(t *testing.T) {
	assert.Equal(t, "memberwise", m.InitializerMemberwise.String())
	assert.Equal(t, "existing", m.PassExisting.String())
	assert.Equal(t, "generated", m.PassGenerated.String())
}
