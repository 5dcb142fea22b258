package value

// Kind identifies the runtime kind of a [Value].
//
// The kind space is closed: every representable value belongs to exactly one
// Kind, so a switch over all constants below is exhaustive. Two kinds are
// containers ([KindSeq] and [KindMap]); the rest are scalars or opaque
// references.
type Kind uint8

const (
	// KindNil is the absent value.
	KindNil Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is an IEEE-754 double.
	KindNumber
	// KindString is an immutable string.
	KindString
	// KindFunc is an opaque callable; compared by identity.
	KindFunc
	// KindHandle is an externally-managed resource reference; compared by
	// identity.
	KindHandle
	// KindSeq is an ordered sequence container.
	KindSeq
	// KindMap is an associative container.
	KindMap
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunc:
		return "func"
	case KindHandle:
		return "handle"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	}
	return "invalid"
}

// IsContainer reports whether v is one of the two container kinds.
func IsContainer(v Value) bool { return v.kind == KindSeq || v.kind == KindMap }

// IsNil reports whether v is the nil value.
func IsNil(v Value) bool { return v.kind == KindNil }

// IsBool reports whether v is a boolean.
func IsBool(v Value) bool { return v.kind == KindBool }

// IsNumber reports whether v is a number.
func IsNumber(v Value) bool { return v.kind == KindNumber }

// IsString reports whether v is a string.
func IsString(v Value) bool { return v.kind == KindString }

// IsFunc reports whether v is a callable.
func IsFunc(v Value) bool { return v.kind == KindFunc }

// IsHandle reports whether v is an opaque handle.
func IsHandle(v Value) bool { return v.kind == KindHandle }

// IsArrayShaped reports whether v is a container whose key set is exactly the
// contiguous numeric range 1..N.
//
// A [Seq] is array-shaped by construction. A [Map] qualifies iff it has an
// entry for every numeric key 1, 2, …, Len() — the classification is purely
// structural, re-evaluated on every call, and never cached on the container.
// Empty containers are vacuously array-shaped. Non-containers are not.
//
// Complexity is O(n) in the entry count.
func IsArrayShaped(v Value) bool {
	switch v.kind {
	case KindSeq:
		return true
	case KindMap:
		for i := 1; i <= v.mp.Len(); i++ {
			if !v.mp.Has(IntKey(i)) {
				return false
			}
		}
		return true
	}
	return false
}

// IsEmpty reports whether v is a container with zero entries.
// Non-containers are never empty.
func IsEmpty(v Value) bool {
	switch v.kind {
	case KindSeq:
		return v.seq.Len() == 0
	case KindMap:
		return v.mp.Len() == 0
	}
	return false
}
