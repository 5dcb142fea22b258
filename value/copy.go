package value

// DeepCopy returns a value structurally identical to v that shares no mutable
// container with the original.
//
// Scalars, funcs, and handles are returned unchanged — they are immutable or
// opaque, so there is nothing to copy. Containers are rebuilt recursively:
// a [Seq] copies to a fresh Seq in element order, a [Map] to a fresh Map
// entry by entry. Attached metadata is copied structurally: Fields is
// deep-copied, the Eq capability is shared by reference.
//
// DeepCopy is cycle-safe and aliasing-preserving: a container reached twice
// in the original maps to a single copy, so self-referential structures
// terminate and come out self-referential.
func DeepCopy(v Value) Value {
	return deepCopyValue(v, nil)
}

func deepCopyValue(v Value, memo map[any]Value) Value {
	switch v.kind {
	case KindSeq:
		if dup, ok := memo[v.seq]; ok {
			return dup
		}
		if memo == nil {
			memo = make(map[any]Value)
		}
		out := &Seq{items: make([]Value, 0, len(v.seq.items))}
		// Register before descending so revisits resolve to the
		// in-progress copy.
		memo[v.seq] = out.Value()
		out.meta = copyMeta(v.seq.meta, memo)
		for _, item := range v.seq.items {
			out.items = append(out.items, deepCopyValue(item, memo))
		}
		return out.Value()

	case KindMap:
		if dup, ok := memo[v.mp]; ok {
			return dup
		}
		if memo == nil {
			memo = make(map[any]Value)
		}
		out := &Map{entries: make(map[Key]Value, len(v.mp.entries))}
		memo[v.mp] = out.Value()
		out.meta = copyMeta(v.mp.meta, memo)
		for k, item := range v.mp.entries {
			out.entries[k] = deepCopyValue(item, memo)
		}
		return out.Value()
	}
	return v
}

func copyMeta(m *Meta, memo map[any]Value) *Meta {
	if m == nil {
		return nil
	}
	out := &Meta{Eq: m.Eq}
	if m.Fields != nil {
		dup := deepCopyValue(m.Fields.Value(), memo)
		out.Fields = dup.mp
	}
	return out
}
