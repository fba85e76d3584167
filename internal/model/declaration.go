// Package model defines the data structures shared by the scaffold generator.
package model

import "strings"

// Kind identifies the closed set of declaration kinds the engine cares about.
type Kind int

const (
	// KindOther covers every declaration the engine does not inspect (protocols, enums, free functions...).
	KindOther Kind = iota
	// KindClass is a class declaration.
	KindClass
	// KindStruct is a struct declaration.
	KindStruct
	// KindExtension is an extension of a named type.
	KindExtension
	// KindInstanceMethod is an instance method, including initializers.
	KindInstanceMethod
	// KindInstanceProperty is a stored or computed instance property.
	KindInstanceProperty
	// KindParameter is a method parameter.
	KindParameter
)

var kindNames = map[Kind]string{
	KindOther:            "other",
	KindClass:            "class",
	KindStruct:           "struct",
	KindExtension:        "extension",
	KindInstanceMethod:   "instance-method",
	KindInstanceProperty: "instance-property",
	KindParameter:        "parameter",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindOther]
}

// Accessibility is the declared access level of a declaration.
type Accessibility int

const (
	// AccessAbsent means the structure carried no access level.
	AccessAbsent Accessibility = iota
	// AccessPublic covers public and open.
	AccessPublic
	// AccessInternal is the implicit module-wide access level.
	AccessInternal
	// AccessFileScoped is fileprivate.
	AccessFileScoped
	// AccessPrivate is private.
	AccessPrivate
)

var accessibilityNames = map[Accessibility]string{
	AccessAbsent:     "",
	AccessPublic:     "public",
	AccessInternal:   "internal",
	AccessFileScoped: "fileprivate",
	AccessPrivate:    "private",
}

func (a Accessibility) String() string {
	return accessibilityNames[a]
}

// Span is a byte range into the owning file's raw contents.
type Span struct {
	Offset int
	Length int
}

// Declaration is one node of a parsed file's declaration tree.
//
// Children holds direct lexical members only; searches must descend explicitly.
// TypeName, Body and Lazy are only meaningful for properties and parameters
// (for methods TypeName is the return type, if any).
type Declaration struct {
	Kind          Kind
	Name          string
	Accessibility Accessibility
	Span          *Span
	Body          *Span
	TypeName      string
	Lazy          bool
	Conformances  []string
	Children      []Declaration
}

// IsTypeLike reports whether the declaration is a class or struct.
func (d Declaration) IsTypeLike() bool {
	return d.Kind == KindClass || d.Kind == KindStruct
}

// IsFragment reports whether the declaration can contribute members to a named type.
func (d Declaration) IsFragment() bool {
	return d.IsTypeLike() || d.Kind == KindExtension
}

// IsInitializer reports whether the declaration is an init method.
func (d Declaration) IsInitializer() bool {
	return d.Kind == KindInstanceMethod && strings.HasPrefix(d.Name, "init(")
}

// IsComputed reports whether a property has an accessor body.
func (d Declaration) IsComputed() bool {
	return d.Body != nil
}

// IsHidden reports whether the declaration is private or fileprivate.
func (d Declaration) IsHidden() bool {
	return d.Accessibility == AccessPrivate || d.Accessibility == AccessFileScoped
}

// IsDouble reports whether the declaration is named like a test double.
func (d Declaration) IsDouble() bool {
	return IsDoubleName(d.Name)
}

// ActualName strips the parenthesized label signature from a method name.
func (d Declaration) ActualName() string {
	if i := strings.IndexByte(d.Name, '('); i >= 0 {
		return d.Name[:i]
	}

	return d.Name
}

// ConformsTo reports whether typeName is listed among the declared conformances.
func (d Declaration) ConformsTo(typeName string) bool {
	for _, conformance := range d.Conformances {
		if conformance == typeName {
			return true
		}
	}

	return false
}

var doubleSuffixes = []string{"mock", "stub"}

// IsDoubleName reports whether a type name ends in a recognized test-double suffix.
func IsDoubleName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range doubleSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

// StripOptionality trims optional and implicitly-unwrapped markers from a type name.
func StripOptionality(typeName string) string {
	return strings.Trim(typeName, "?!")
}
