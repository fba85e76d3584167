package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// ErrMalformedStructure is returned when a structure document cannot be decoded.
var ErrMalformedStructure = errors.New("malformed structure document")

// Structure document keys and kind identifiers (SourceKitten).
const (
	kindPrefix        = "source.lang.swift.decl."
	accessPrefix      = "source.lang.swift.accessibility."
	lazyAttribute     = "lazy"
	extensionKindBase = "extension"
)

var kindsByName = map[string]m.Kind{
	"class":                    m.KindClass,
	"struct":                   m.KindStruct,
	extensionKindBase:          m.KindExtension,
	"function.method.instance": m.KindInstanceMethod,
	"var.instance":             m.KindInstanceProperty,
	"var.parameter":            m.KindParameter,
}

var accessByName = map[string]m.Accessibility{
	"open":        m.AccessPublic,
	"public":      m.AccessPublic,
	"internal":    m.AccessInternal,
	"fileprivate": m.AccessFileScoped,
	"private":     m.AccessPrivate,
}

type rawNamed struct {
	Name *string `json:"key.name"`
}

type rawAttribute struct {
	Attribute *string `json:"key.attribute"`
}

type rawStructure struct {
	Accessibility  *string         `json:"key.accessibility"`
	Attributes     []rawAttribute  `json:"key.attributes"`
	BodyLength     *int            `json:"key.bodylength"`
	BodyOffset     *int            `json:"key.bodyoffset"`
	InheritedTypes []rawNamed      `json:"key.inheritedtypes"`
	Kind           *string         `json:"key.kind"`
	Length         *int            `json:"key.length"`
	Name           *string         `json:"key.name"`
	Offset         *int            `json:"key.offset"`
	Substructures  []*rawStructure `json:"key.substructure"`
	TypeName       *string         `json:"key.typename"`
}

// DecodeStructure converts a raw structure document into a declaration tree.
// Decoding is all-or-nothing: any malformed node fails the whole document.
func DecodeStructure(data []byte) (*m.Declaration, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformedStructure)
	}

	var raw rawStructure
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStructure, err)
	}

	root, err := convertStructure(&raw, "")
	if err != nil {
		return nil, err
	}

	return &root, nil
}

func convertStructure(raw *rawStructure, path string) (m.Declaration, error) {
	decl := m.Declaration{
		Kind:          kindOf(raw.Kind),
		Name:          deref(raw.Name),
		Accessibility: accessibilityOf(raw.Accessibility),
		TypeName:      deref(raw.TypeName),
	}

	if raw.Offset != nil && raw.Length != nil {
		decl.Span = &m.Span{Offset: *raw.Offset, Length: *raw.Length}
	}

	if raw.BodyLength != nil {
		decl.Body = &m.Span{Offset: deref(raw.BodyOffset), Length: *raw.BodyLength}
	}

	for _, attr := range raw.Attributes {
		name := deref(attr.Attribute)
		if name == lazyAttribute || strings.HasSuffix(name, "."+lazyAttribute) {
			decl.Lazy = true
		}
	}

	for _, inherited := range raw.InheritedTypes {
		if inherited.Name != nil {
			decl.Conformances = append(decl.Conformances, *inherited.Name)
		}
	}

	for i, child := range raw.Substructures {
		childPath := fmt.Sprintf("%s/%d", path, i)

		if child == nil || child.Kind == nil {
			return m.Declaration{}, fmt.Errorf("%w: node %s has no kind", ErrMalformedStructure, childPath)
		}

		converted, err := convertStructure(child, childPath)
		if err != nil {
			return m.Declaration{}, err
		}

		decl.Children = append(decl.Children, converted)
	}

	return decl, nil
}

func kindOf(raw *string) m.Kind {
	name, ok := strings.CutPrefix(deref(raw), kindPrefix)
	if !ok {
		return m.KindOther
	}

	if kind, ok := kindsByName[name]; ok {
		return kind
	}

	// extension.class, extension.struct, extension.enum, extension.protocol
	if strings.HasPrefix(name, extensionKindBase+".") {
		return m.KindExtension
	}

	return m.KindOther
}

func accessibilityOf(raw *string) m.Accessibility {
	name, ok := strings.CutPrefix(deref(raw), accessPrefix)
	if !ok {
		return m.AccessAbsent
	}

	return accessByName[name]
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}

// TreeLoader loads a source file together with its declaration tree.
type TreeLoader interface {
	Load(ctx context.Context, path m.Path) (*m.File, error)
}

type treeLoader struct {
	adapter.SourceFSAdapter
	adapter.StructureAdapter
}

// NewTreeLoader creates a TreeLoader backed by the filesystem and structure adapters.
func NewTreeLoader(fsAdapter adapter.SourceFSAdapter, structureAdapter adapter.StructureAdapter) TreeLoader {
	return &treeLoader{
		SourceFSAdapter:  fsAdapter,
		StructureAdapter: structureAdapter,
	}
}

func (l *treeLoader) Load(ctx context.Context, path m.Path) (*m.File, error) {
	content, err := l.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	document, err := l.Structure(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("structure %s: %w", path, err)
	}

	root, err := DecodeStructure(document)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &m.File{Path: path, Content: content, Root: root}, nil
}

// walkTrees loads every source file under root in enumeration order and hands
// each successfully loaded tree to visit. Files that fail to load are logged
// and skipped. visit returns false to stop the walk early.
func walkTrees(ctx context.Context, fsAdapter adapter.SourceFSAdapter, loader TreeLoader, root m.Path, visit func(*m.File) bool) error {
	paths, err := fsAdapter.SourceFiles(ctx, root, m.SourceExtension)
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", root, err)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		file, err := loader.Load(ctx, path)
		if err != nil {
			slog.Warn("Skipping file", "path", path, "error", err)
			continue
		}

		if !visit(file) {
			return nil
		}
	}

	return nil
}
