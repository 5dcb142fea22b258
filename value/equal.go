package value

// Equal reports deep structural equality of two arbitrary values.
//
// Scalars compare by primitive equality: numbers, strings, booleans, and nil
// by value (NaN is not equal to itself), funcs and handles by identity.
// Containers compare structurally: every key of one side must be present on
// the other with a recursively equal value. A [Seq] and a [Map] are equal
// when the map is array-shaped and the elements at 1..N match pairwise —
// array shape is a classification, not a storage type, so it cannot split
// logically equal containers.
//
// Two references to the same container instance are equal without traversal.
// When the left operand's metadata carries an [Equaler], the comparison
// defers to it entirely.
//
// Equal is cycle-safe: a pair of containers already under comparison on the
// current path is assumed equal, so self-referential and mutually referential
// structures terminate. On acyclic inputs the guard never fires and the
// result is the plain recursive comparison.
func Equal(a, b Value) bool {
	return equalValues(a, b, nil)
}

// visitedPair keys the in-progress comparison set by the identity of both
// containers.
type visitedPair struct {
	a, b any
}

func equalValues(a, b Value, seen map[visitedPair]struct{}) bool {
	if !IsContainer(a) || !IsContainer(b) {
		return primitiveEqual(a, b)
	}
	if containerID(a) == containerID(b) {
		return true
	}
	if m := containerMeta(a); m != nil && m.Eq != nil {
		return m.Eq.Equal(a, b)
	}

	pair := visitedPair{a: containerID(a), b: containerID(b)}
	if _, ok := seen[pair]; ok {
		return true
	}
	if seen == nil {
		seen = make(map[visitedPair]struct{})
	}
	seen[pair] = struct{}{}
	defer delete(seen, pair)

	switch {
	case a.kind == KindSeq && b.kind == KindSeq:
		if a.seq.Len() != b.seq.Len() {
			return false
		}
		for i, item := range a.seq.items {
			if !equalValues(item, b.seq.items[i], seen) {
				return false
			}
		}
		return true

	case a.kind == KindMap && b.kind == KindMap:
		if a.mp.Len() != b.mp.Len() {
			return false
		}
		// Equal lengths plus a one-directional key sweep guarantees the
		// key sets coincide.
		for k, va := range a.mp.entries {
			vb, ok := b.mp.entries[k]
			if !ok || !equalValues(va, vb, seen) {
				return false
			}
		}
		return true

	case a.kind == KindSeq:
		return seqEqualsMap(a.seq, b.mp, seen)
	default:
		return seqEqualsMap(b.seq, a.mp, seen)
	}
}

// seqEqualsMap compares a sequence with a map that may be array-shaped.
func seqEqualsMap(s *Seq, m *Map, seen map[visitedPair]struct{}) bool {
	if s.Len() != m.Len() {
		return false
	}
	for i, item := range s.items {
		other, ok := m.Get(IntKey(i + 1))
		if !ok || !equalValues(item, other, seen) {
			return false
		}
	}
	return true
}

// primitiveEqual is the host language's shallow equality: scalar payloads by
// value, funcs, handles, and containers by identity.
func primitiveEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindFunc:
		return a.fn == b.fn
	case KindHandle:
		return a.hnd == b.hnd
	case KindSeq:
		return a.seq == b.seq
	case KindMap:
		return a.mp == b.mp
	}
	return false
}

func containerID(v Value) any {
	if v.kind == KindSeq {
		return v.seq
	}
	return v.mp
}

func containerMeta(v Value) *Meta {
	switch v.kind {
	case KindSeq:
		return v.seq.meta
	case KindMap:
		return v.mp.meta
	}
	return nil
}
