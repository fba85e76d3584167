package model

// DoubleRequest asks the double-generation collaborator for doubles of Types.
//
// AnnotationPath must lie under Root so the generator scans it; the
// generator removes it once the run is over.
type DoubleRequest struct {
	Root            Path
	OutputDir       Path
	AnnotationPath  Path
	Types           []string
	Imports         []string
	TestableImports []string
}

// GeneratedFile is a rendered scaffold ready to be written.
type GeneratedFile struct {
	Path    Path
	Content []byte
}
