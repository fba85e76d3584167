package model

// InitializerSource records where an initializer signature came from.
type InitializerSource int

const (
	// InitializerNone means no parameters could be derived; a no-argument init is assumed.
	InitializerNone InitializerSource = iota
	// InitializerExplicit means an init method was declared.
	InitializerExplicit
	// InitializerMemberwise means the signature was inferred from stored struct fields.
	InitializerMemberwise
)

func (s InitializerSource) String() string {
	switch s {
	case InitializerExplicit:
		return "explicit"
	case InitializerMemberwise:
		return "memberwise"
	default:
		return "none"
	}
}

// ResolverPass identifies which substitution pass produced a result.
type ResolverPass int

const (
	// PassExisting resolves against doubles already present in the source tree.
	PassExisting ResolverPass = iota
	// PassGenerated resolves against freshly generated doubles.
	PassGenerated
)

func (p ResolverPass) String() string {
	if p == PassGenerated {
		return "generated"
	}

	return "existing"
}
