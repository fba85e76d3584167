package model

// Path represents a file system path.
type Path string

// SourceExtension is the extension of files the engine inspects.
const SourceExtension = ".swift"

// File is one source file with its raw contents and parsed declaration tree.
type File struct {
	Path    Path
	Content []byte
	Root    *Declaration
}

// Text returns the raw text covered by span, or false if the span is out of range.
func (f *File) Text(span Span) (string, bool) {
	if f == nil || span.Offset < 0 || span.Length < 0 || span.Offset > len(f.Content) {
		return "", false
	}

	// Length is compared against what is left so huge values cannot overflow End.
	if span.Length > len(f.Content)-span.Offset {
		return "", false
	}

	return string(f.Content[span.Offset : span.Offset+span.Length]), true
}

// Fragment is a class, struct or extension declaration of the requested type.
type Fragment struct {
	Path        Path
	Declaration Declaration
}

// Match is the outcome of locating a type: the primary class/struct declaration,
// the file it lives in, and every fragment sharing its name.
type Match struct {
	TypeName  string
	Primary   Declaration
	File      *File
	Fragments []Fragment
}

// Declarations returns the fragment declarations in match order.
func (m Match) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(m.Fragments))
	for _, f := range m.Fragments {
		decls = append(decls, f.Declaration)
	}

	return decls
}
