package domain_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	adaptermocks "unitgen.dev/pkg/unitgen/internal/adapter/mocks"
	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// node describes one declaration of a fixture. Span and Body name substrings
// of the fixture source; their offsets are computed when the document is built.
type node struct {
	Kind       string
	Name       string
	Access     string
	TypeName   string
	Span       string
	Body       string
	Inherited  []string
	Attributes []string
	Children   []node
}

// swiftFile is a fixture source file plus the structure document the
// external parser would produce for it. Raw overrides the generated document.
type swiftFile struct {
	Path   string
	Source string
	Nodes  []node
	Raw    string
}

// fixtureTree is a source tree on disk served by a fake structure parser.
type fixtureTree struct {
	t         *testing.T
	Root      m.Path
	FS        adapter.SourceFSAdapter
	Structure *adaptermocks.MockStructureAdapter
	Loader    domain.TreeLoader

	mu   sync.Mutex
	docs map[m.Path][]byte
}

func newFixtureTree(t *testing.T, files ...swiftFile) *fixtureTree {
	t.Helper()

	tree := &fixtureTree{
		t:         t,
		Root:      m.Path(t.TempDir()),
		FS:        adapter.NewLocalSourceFSAdapter(),
		Structure: adaptermocks.NewMockStructureAdapter(t),
		docs:      map[m.Path][]byte{},
	}

	tree.Structure.EXPECT().Structure(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, path m.Path) ([]byte, error) {
			tree.mu.Lock()
			defer tree.mu.Unlock()

			doc, ok := tree.docs[path]
			if !ok {
				return nil, errors.New("sourcekitten: no such file")
			}

			return doc, nil
		}).Maybe()

	tree.Loader = domain.NewTreeLoader(tree.FS, tree.Structure)

	for _, file := range files {
		tree.Add(file)
	}

	return tree
}

// Add writes a fixture file under the root and registers its document.
func (ft *fixtureTree) Add(file swiftFile) m.Path {
	ft.t.Helper()

	path := m.Path(filepath.Join(string(ft.Root), filepath.FromSlash(file.Path)))

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		ft.t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(string(path), []byte(file.Source), 0o644); err != nil {
		ft.t.Fatalf("write %s: %v", path, err)
	}

	doc := []byte(file.Raw)
	if file.Raw == "" {
		doc = structureDocument(ft.t, file.Source, file.Nodes...)
	}

	ft.mu.Lock()
	ft.docs[path] = doc
	ft.mu.Unlock()

	return path
}

// Join returns a path below the fixture root.
func (ft *fixtureTree) Join(elem ...string) m.Path {
	return m.Path(filepath.Join(append([]string{string(ft.Root)}, elem...)...))
}

func structureDocument(t *testing.T, source string, nodes ...node) []byte {
	t.Helper()

	root := map[string]any{
		"key.diagnostic_stage": "source.diagnostic.stage.swift.parse",
		"key.length":           len(source),
		"key.offset":           0,
		"key.substructure":     convertNodes(t, source, nodes),
	}

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("marshal structure: %v", err)
	}

	return data
}

func convertNodes(t *testing.T, source string, nodes []node) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))

	for _, n := range nodes {
		raw := map[string]any{
			"key.kind": "source.lang.swift.decl." + n.Kind,
		}

		if n.Name != "" {
			raw["key.name"] = n.Name
		}

		if n.Access != "" {
			raw["key.accessibility"] = "source.lang.swift.accessibility." + n.Access
		}

		if n.TypeName != "" {
			raw["key.typename"] = n.TypeName
		}

		if n.Span != "" {
			offset := strings.Index(source, n.Span)
			if offset < 0 {
				t.Fatalf("span %q not found in fixture source", n.Span)
			}

			raw["key.offset"] = offset
			raw["key.length"] = len(n.Span)
		}

		if n.Body != "" {
			offset := strings.Index(source, n.Body)
			if offset < 0 {
				t.Fatalf("body %q not found in fixture source", n.Body)
			}

			raw["key.bodyoffset"] = offset
			raw["key.bodylength"] = len(n.Body)
		}

		if len(n.Inherited) > 0 {
			inherited := make([]map[string]string, 0, len(n.Inherited))
			for _, name := range n.Inherited {
				inherited = append(inherited, map[string]string{"key.name": name})
			}

			raw["key.inheritedtypes"] = inherited
		}

		if len(n.Attributes) > 0 {
			attributes := make([]map[string]string, 0, len(n.Attributes))
			for _, name := range n.Attributes {
				attributes = append(attributes, map[string]string{"key.attribute": name})
			}

			raw["key.attributes"] = attributes
		}

		if len(n.Children) > 0 {
			raw["key.substructure"] = convertNodes(t, source, n.Children)
		}

		out = append(out, raw)
	}

	return out
}

// param is a parameter child of a method fixture.
func param(name, typeName string) node {
	return node{Kind: "var.parameter", Name: name, TypeName: typeName}
}
