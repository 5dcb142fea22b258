package value

// IsMatch reports whether every entry of props is present in v with a
// primitively equal value — a shallow partial-match test.
//
// Unlike [Equal], the per-key comparison never recurses: scalars compare by
// value, containers by reference identity. Keys absent from v simply fail
// the match; a non-container v never matches. An empty props matches any
// container.
func IsMatch(v Value, props *Map) bool {
	if !IsContainer(v) || props == nil {
		return false
	}
	for k, want := range props.entries {
		got, ok := getKey(v, k)
		if !ok || !primitiveEqual(got, want) {
			return false
		}
	}
	return true
}

// Matcher returns a reusable predicate that reports [IsMatch] against props.
// Handy for building ad-hoc filters:
//
//	active := value.Matcher(value.MapOf(
//	    value.Entry{Key: value.StringKey("active"), Val: value.Bool(true)},
//	))
//	found, ok, _ := value.Find(users, func(_ value.Key, u value.Value) bool {
//	    return active(u)
//	})
func Matcher(props *Map) func(Value) bool {
	return func(v Value) bool { return IsMatch(v, props) }
}

// getKey looks k up in either container kind. For sequences, the numeric
// keys 1..Len() address the elements.
func getKey(v Value, k Key) (Value, bool) {
	switch v.kind {
	case KindMap:
		return v.mp.Get(k)
	case KindSeq:
		if k.kind != KindNumber {
			return Nil(), false
		}
		i := int(k.num)
		if float64(i) != k.num || i < 1 || i > v.seq.Len() {
			return Nil(), false
		}
		return v.seq.items[i-1], true
	}
	return Nil(), false
}
