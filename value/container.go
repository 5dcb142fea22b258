package value

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Seq — ordered sequence container
// ─────────────────────────────────────────────────────────────────────────────

// Seq is an ordered sequence of Values.
//
// Unlike the scalar kinds, containers are mutable and held by pointer:
// identity is pointer identity, and every constructor allocates a fresh
// instance. Positions are 0-based in Go code; in the dynamic key space a
// sequence exposes the contiguous numeric keys 1..Len().
type Seq struct {
	items []Value
	meta  *Meta
}

// NewSeq creates a sequence from a variadic list of items (copied).
func NewSeq(items ...Value) *Seq {
	dst := make([]Value, len(items))
	copy(dst, items)
	return &Seq{items: dst}
}

// SeqFrom creates a sequence from a slice (the slice is copied).
func SeqFrom(items []Value) *Seq {
	dst := make([]Value, len(items))
	copy(dst, items)
	return &Seq{items: dst}
}

// SeqValue wraps a variadic list of items as a sequence Value.
func SeqValue(items ...Value) Value { return NewSeq(items...).Value() }

// Value lifts the sequence into the dynamic value space.
// The Value refers to s itself, not a copy.
func (s *Seq) Value() Value { return Value{kind: KindSeq, seq: s} }

// Len returns the number of items.
func (s *Seq) Len() int { return len(s.items) }

// At returns the item at the 0-based position i.
// Returns the nil value and false when i is out of range.
func (s *Seq) At(i int) (Value, bool) {
	if i < 0 || i >= len(s.items) {
		return Nil(), false
	}
	return s.items[i], true
}

// SetAt replaces the item at position i. Reports whether i was in range.
func (s *Seq) SetAt(i int, v Value) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items[i] = v
	return true
}

// Append appends items in place.
func (s *Seq) Append(items ...Value) { s.items = append(s.items, items...) }

// Items returns a copy of the underlying slice.
func (s *Seq) Items() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// First returns the first item, or (nil value, false) when empty.
func (s *Seq) First() (Value, bool) {
	if len(s.items) == 0 {
		return Nil(), false
	}
	return s.items[0], true
}

// Last returns the last item, or (nil value, false) when empty.
func (s *Seq) Last() (Value, bool) {
	if len(s.items) == 0 {
		return Nil(), false
	}
	return s.items[len(s.items)-1], true
}

// Rest returns a new sequence with the first item dropped.
// Returns an empty sequence when s has at most one item.
func (s *Seq) Rest() *Seq {
	if len(s.items) == 0 {
		return NewSeq()
	}
	return SeqFrom(s.items[1:])
}

// Slice returns a new sequence holding items[from:to], clamped to range.
func (s *Seq) Slice(from, to int) *Seq {
	if from < 0 {
		from = 0
	}
	if to > len(s.items) {
		to = len(s.items)
	}
	if from >= to {
		return NewSeq()
	}
	return SeqFrom(s.items[from:to])
}

// Meta returns the metadata attached to s, or nil.
func (s *Seq) Meta() *Meta { return s.meta }

// SetMeta attaches metadata to s, replacing any existing descriptor.
func (s *Seq) SetMeta(m *Meta) { s.meta = m }

// ─────────────────────────────────────────────────────────────────────────────
// Map — associative container
// ─────────────────────────────────────────────────────────────────────────────

// Entry is a single (key, value) pair of a [Map].
type Entry struct {
	Key Key
	Val Value
}

// Map is an associative container from [Key] to [Value].
//
// Iteration order of a Map is unspecified. A Map whose key set is exactly
// 1..N is classified as array-shaped by [IsArrayShaped]; the classification
// is structural and not a property of the Map itself.
type Map struct {
	entries map[Key]Value
	meta    *Meta
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{entries: make(map[Key]Value)}
}

// MapOf creates a map from entries. Later duplicates of a key win.
func MapOf(entries ...Entry) *Map {
	m := &Map{entries: make(map[Key]Value, len(entries))}
	for _, e := range entries {
		m.entries[e.Key] = e.Val
	}
	return m
}

// Value lifts the map into the dynamic value space.
// The Value refers to m itself, not a copy.
func (m *Map) Value() Value { return Value{kind: KindMap, mp: m} }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the value stored under k.
// Returns the nil value and false when k is absent.
func (m *Map) Get(k Key) (Value, bool) {
	v, ok := m.entries[k]
	if !ok {
		return Nil(), false
	}
	return v, true
}

// Set stores v under k, replacing any existing entry.
func (m *Map) Set(k Key, v Value) { m.entries[k] = v }

// Delete removes the entry under k, if present.
func (m *Map) Delete(k Key) { delete(m.entries, k) }

// Has reports whether k is present.
func (m *Map) Has(k Key) bool {
	_, ok := m.entries[k]
	return ok
}

// Keys returns the keys in unspecified order.
func (m *Map) Keys() []Key {
	out := make([]Key, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	return out
}

// SortedKeys returns the keys in the package's total key order
// (bools, then numbers, then strings). Used where deterministic traversal
// matters.
func (m *Map) SortedKeys() []Key {
	out := m.Keys()
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// Entries returns a copy of the entries in unspecified order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Key: k, Val: v})
	}
	return out
}

// Meta returns the metadata attached to m, or nil.
func (m *Map) Meta() *Meta { return m.meta }

// SetMeta attaches metadata to m, replacing any existing descriptor.
func (m *Map) SetMeta(meta *Meta) { m.meta = meta }

// ─────────────────────────────────────────────────────────────────────────────
// Meta — optional container behavior descriptor
// ─────────────────────────────────────────────────────────────────────────────

// Equaler is the capability a container's metadata may provide to override
// structural comparison.
//
// When the left operand of [Equal] carries an Equaler, the comparison defers
// to it entirely: no structural traversal happens and the Equaler's verdict
// is final.
type Equaler interface {
	Equal(a, b Value) bool
}

// EqualerFunc adapts a plain function to the [Equaler] interface.
type EqualerFunc func(a, b Value) bool

// Equal calls f(a, b).
func (f EqualerFunc) Equal(a, b Value) bool { return f(a, b) }

// Meta is an optional behavior descriptor attached to a container: a custom
// equality capability and/or prototype-style shared fields.
//
// A container has at most one Meta. [DeepCopy] copies the descriptor
// structurally: Fields is deep-copied, Eq is shared by reference (a
// capability has no structure to copy).
type Meta struct {
	// Eq, when non-nil, overrides structural equality for the container.
	Eq Equaler

	// Fields holds prototype-style shared defaults. The library itself
	// never consults Fields during comparison or copying beyond copying
	// them; interpretation is up to the embedding host.
	Fields *Map
}
