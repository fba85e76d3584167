package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func loadDeclaration(t *testing.T, source string, decl node) (m.Declaration, *m.File) {
	t.Helper()

	root, err := domain.DecodeStructure(structureDocument(t, source, decl))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	return root.Children[0], &m.File{Path: "Fixture.swift", Content: []byte(source), Root: root}
}

func TestInitializerExtractor_Explicit(t *testing.T) {
	source := `final class ProfileViewModel {
    init(service: ProfileService, _ analytics: Analytics?, cacheStub: CacheStub) {}
}
`
	decl, file := loadDeclaration(t, source, node{
		Kind: "class", Name: "ProfileViewModel",
		Children: []node{{
			Kind: "function.method.instance", Name: "init(service:_:cacheStub:)",
			Children: []node{param("service", "ProfileService"), param("analytics", "Analytics?"), param("cacheStub", "CacheStub")},
		}},
	})

	params, src := domain.NewInitializerExtractor().Extract(decl, file)

	assert.Equal(t, m.InitializerExplicit, src)
	require.Len(t, params, 3)
	assert.Equal(t, m.NewParameter("service", "service", "ProfileService"), params[0])
	assert.Equal(t, "", params[1].Label)
	assert.Equal(t, "Analytics", params[1].BaseType())
	assert.True(t, params[2].IsResolved(), "double typed parameters start resolved")
	assert.Equal(t, "CacheStub", params[2].EffectiveType())
}

func TestInitializerExtractor_FirstInitOnly(t *testing.T) {
	decl, file := loadDeclaration(t, "class Router {}\n", node{
		Kind: "class", Name: "Router",
		Children: []node{
			{Kind: "function.method.instance", Name: "init(window:)", Children: []node{param("window", "UIWindow")}},
			{Kind: "function.method.instance", Name: "init(window:flow:)", Children: []node{param("window", "UIWindow"), param("flow", "Flow")}},
		},
	})

	params, _ := domain.NewInitializerExtractor().Extract(decl, file)
	assert.Equal(t, "(window: UIWindow)", params.String())
}

func TestInitializerExtractor_LabelCountMismatch(t *testing.T) {
	decl, file := loadDeclaration(t, "class Mapper {}\n", node{
		Kind: "class", Name: "Mapper",
		Children: []node{{
			Kind: "function.method.instance", Name: "init(a:b:)",
			Children: []node{param("x", "Int"), param("y", "Int"), param("z", "Int")},
		}},
	})

	params, _ := domain.NewInitializerExtractor().Extract(decl, file)
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].Label)
	assert.Equal(t, "b", params[1].Label)
}

func TestInitializerExtractor_MemberwiseStruct(t *testing.T) {
	source := `struct Settings {
    let a: Int
    var b: String = ""
    var c: String?
    lazy var d: String = { "lazy" }()
    var e: Int { a * 2 }
    private(set) var f: Double?
    let g: URL?
    @Published var h: Bool
}
`
	decl, file := loadDeclaration(t, source, node{
		Kind: "struct", Name: "Settings",
		Children: []node{
			{Kind: "var.instance", Name: "a", TypeName: "Int", Span: "let a: Int"},
			{Kind: "var.instance", Name: "b", TypeName: "String", Span: `var b: String = ""`},
			{Kind: "var.instance", Name: "c", TypeName: "String?", Span: "var c: String?"},
			{Kind: "var.instance", Name: "d", TypeName: "String", Span: `lazy var d: String = { "lazy" }()`, Attributes: []string{"source.decl.attribute.lazy"}},
			{Kind: "var.instance", Name: "e", TypeName: "Int", Span: "var e: Int { a * 2 }", Body: " a * 2 "},
			{Kind: "var.instance", Name: "f", TypeName: "Double?", Span: "private(set) var f: Double?"},
			{Kind: "var.instance", Name: "g", TypeName: "URL?", Span: "let g: URL?"},
			{Kind: "var.instance", Name: "h", TypeName: "Bool", Span: "@Published var h: Bool"},
		},
	})

	params, src := domain.NewInitializerExtractor().Extract(decl, file)

	assert.Equal(t, m.InitializerMemberwise, src)
	assert.Equal(t, "(a: Int, g: URL?, h: Bool)", params.String())

	for _, p := range params {
		assert.Equal(t, p.Name, p.Label)
	}
}

func TestInitializerExtractor_MemberwiseExample(t *testing.T) {
	source := `struct Example {
    let a: Int
    var b: String = ""
    var c: String?
    lazy var d: String = {...}()
}
`
	decl, file := loadDeclaration(t, source, node{
		Kind: "struct", Name: "Example",
		Children: []node{
			{Kind: "var.instance", Name: "a", TypeName: "Int", Span: "let a: Int"},
			{Kind: "var.instance", Name: "b", TypeName: "String", Span: `var b: String = ""`},
			{Kind: "var.instance", Name: "c", TypeName: "String?", Span: "var c: String?"},
			{Kind: "var.instance", Name: "d", TypeName: "String", Span: "lazy var d: String = {...}()", Attributes: []string{"source.decl.attribute.lazy"}},
		},
	})

	params, _ := domain.NewInitializerExtractor().Extract(decl, file)
	require.Len(t, params, 1)
	assert.Equal(t, m.NewParameter("a", "a", "Int"), params[0])
}

func TestInitializerExtractor_MemberwiseSkipsUnreadableSpans(t *testing.T) {
	source := "struct Point {\n    let x: Double\n}\n"
	decl, file := loadDeclaration(t, source, node{
		Kind: "struct", Name: "Point",
		Children: []node{
			{Kind: "var.instance", Name: "x", TypeName: "Double", Span: "let x: Double"},
			{Kind: "var.instance", Name: "y", TypeName: "Double"},
		},
	})

	decl.Children = append(decl.Children, m.Declaration{
		Kind: m.KindInstanceProperty, Name: "z", TypeName: "Double",
		Span: &m.Span{Offset: len(source) - 2, Length: 40},
	})

	params, _ := domain.NewInitializerExtractor().Extract(decl, file)
	assert.Equal(t, "(x: Double)", params.String())
}

func TestInitializerExtractor_MemberwiseSkipsOverflowingSpan(t *testing.T) {
	source := "struct Point {\n    let x: Double\n    let y: Double\n}\n"
	document := `{"key.substructure": [{
		"key.kind": "source.lang.swift.decl.struct", "key.name": "Point",
		"key.substructure": [
			{"key.kind": "source.lang.swift.decl.var.instance", "key.name": "x", "key.typename": "Double",
			 "key.offset": 1, "key.length": 9223372036854775807},
			{"key.kind": "source.lang.swift.decl.var.instance", "key.name": "y", "key.typename": "Double",
			 "key.offset": 37, "key.length": 13}
		]
	}]}`

	root, err := domain.DecodeStructure([]byte(document))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	file := &m.File{Path: "Point.swift", Content: []byte(source), Root: root}

	var (
		params m.Parameters
		src    m.InitializerSource
	)

	require.NotPanics(t, func() {
		params, src = domain.NewInitializerExtractor().Extract(root.Children[0], file)
	})
	assert.Equal(t, m.InitializerMemberwise, src)
	assert.Equal(t, "(y: Double)", params.String())
}

func TestInitializerExtractor_PrefersExplicitForStructs(t *testing.T) {
	source := "struct Token {\n    let raw: String\n    init(value: String) { raw = value }\n}\n"
	decl, file := loadDeclaration(t, source, node{
		Kind: "struct", Name: "Token",
		Children: []node{
			{Kind: "var.instance", Name: "raw", TypeName: "String", Span: "let raw: String"},
			{Kind: "function.method.instance", Name: "init(value:)", Children: []node{param("value", "String")}},
		},
	})

	params, src := domain.NewInitializerExtractor().Extract(decl, file)
	assert.Equal(t, m.InitializerExplicit, src)
	assert.Equal(t, "(value: String)", params.String())
}

func TestInitializerExtractor_ClassWithoutInit(t *testing.T) {
	source := "class Logger {\n    let prefix: String\n}\n"
	decl, file := loadDeclaration(t, source, node{
		Kind: "class", Name: "Logger",
		Children: []node{{Kind: "var.instance", Name: "prefix", TypeName: "String", Span: "let prefix: String"}},
	})

	params, src := domain.NewInitializerExtractor().Extract(decl, file)
	assert.Empty(t, params)
	assert.Equal(t, m.InitializerNone, src)
}
