package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a datum in the dynamic value space: a closed tagged union over
// nil, booleans, numbers, strings, callables, opaque handles, and the two
// container kinds [Seq] and [Map].
//
// Value is a small struct and is always passed by value. Scalars are
// immutable; containers are held by pointer, so two Values may refer to the
// same container instance — container identity is pointer identity.
//
// The zero Value is the nil value.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	fn   *Func
	hnd  Handle
	seq  *Seq
	mp   *Map
}

// Func is an opaque callable value.
//
// Behavior is never introspected: two Funcs are equal only when they are the
// same *Func instance. Wrap a Go function with [NewFunc].
type Func struct {
	f func(args ...Value) (Value, error)
}

// Call invokes the wrapped function.
func (f *Func) Call(args ...Value) (Value, error) {
	return f.f(args...)
}

// Handle is an externally-managed resource reference with no introspectable
// structure.
//
// Handles are compared with Go equality, so the wrapped value must be a
// comparable type (a pointer, channel, or small struct of comparables).
type Handle any

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Nil returns the nil value. Equivalent to the zero Value.
func Nil() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps an IEEE-754 double.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int wraps an integer as a number.
func Int(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// NewFunc wraps a Go function as an opaque callable value.
// Every call creates a distinct identity: NewFunc(f) != NewFunc(f) under
// [Equal].
func NewFunc(f func(args ...Value) (Value, error)) Value {
	return Value{kind: KindFunc, fn: &Func{f: f}}
}

// NewHandle wraps an externally-managed resource as an opaque handle.
// h must be a comparable Go value.
func NewHandle(h Handle) Value {
	return Value{kind: KindHandle, hnd: h}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns the runtime kind of v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload. The second result is false when v is
// not a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload. The second result is false when v is
// not a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload. The second result is false when v is
// not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsFunc returns the callable payload, or (nil, false) when v is not a func.
func (v Value) AsFunc() (*Func, bool) {
	if v.kind != KindFunc {
		return nil, false
	}
	return v.fn, true
}

// AsHandle returns the handle payload, or (nil, false) when v is not a handle.
func (v Value) AsHandle() (Handle, bool) {
	if v.kind != KindHandle {
		return nil, false
	}
	return v.hnd, true
}

// AsSeq returns the sequence payload, or (nil, false) when v is not a seq.
func (v Value) AsSeq() (*Seq, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	return v.seq, true
}

// AsMap returns the map payload, or (nil, false) when v is not a map.
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.mp, true
}

// String returns a human-readable representation of v.
// It implements [fmt.Stringer]. Containers render their entries; funcs and
// handles render as opaque placeholders.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindFunc:
		return fmt.Sprintf("func(%p)", v.fn)
	case KindHandle:
		return fmt.Sprintf("handle(%v)", v.hnd)
	case KindSeq:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.seq.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindMap:
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for _, e := range v.mp.Entries() {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(e.Key.Value().String())
			sb.WriteString(": ")
			sb.WriteString(e.Val.String())
		}
		sb.WriteByte('}')
		return sb.String()
	}
	return "invalid"
}
