package digest

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math"

	"github.com/hasbyte1/go-underscore-utils/value"
)

// Digester computes a structural fingerprint of a dynamic value.
//
// All implementations must be safe for concurrent use by multiple
// goroutines; the built-in drivers allocate a fresh hash state per call.
type Digester interface {
	// Sum returns the fingerprint of v's canonical encoding.
	// Returns ErrNotDigestible for funcs, handles, and cyclic containers.
	Sum(v value.Value) ([]byte, error)
}

// Kind tags of the canonical encoding. Scalars are followed by their
// payload; containers by a big-endian entry count and their entries.
const (
	tagNil    = 'z'
	tagFalse  = 'f'
	tagTrue   = 'b'
	tagNumber = 'n'
	tagString = 't'
	tagSeq    = 's'
	tagMap    = 'm'
)

// encode writes the canonical encoding of v to w.
//
// onPath tracks container identities on the current descent so that cycles
// are detected rather than recursed into.
func encode(w io.Writer, v value.Value, onPath map[any]struct{}) error {
	switch v.Kind() {
	case value.KindNil:
		return writeByte(w, tagNil)

	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return writeByte(w, tagTrue)
		}
		return writeByte(w, tagFalse)

	case value.KindNumber:
		n, _ := v.AsNumber()
		if n == 0 {
			n = 0 // fold -0 into 0: they are equal, so they must digest equal
		}
		if err := writeByte(w, tagNumber); err != nil {
			return err
		}
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(n))
		_, err := w.Write(buf[:])
		return err

	case value.KindString:
		s, _ := v.AsString()
		if err := writeByte(w, tagString); err != nil {
			return err
		}
		if err := writeLen(w, len(s)); err != nil {
			return err
		}
		_, err := io.WriteString(w, s)
		return err

	case value.KindSeq, value.KindMap:
		return encodeContainer(w, v, onPath)
	}
	return fmt.Errorf("%w: %s values have no canonical content", ErrNotDigestible, v.Kind())
}

func encodeContainer(w io.Writer, v value.Value, onPath map[any]struct{}) error {
	id := containerID(v)
	if _, cyclic := onPath[id]; cyclic {
		return fmt.Errorf("%w: cyclic container", ErrNotDigestible)
	}
	if onPath == nil {
		onPath = make(map[any]struct{})
	}
	onPath[id] = struct{}{}
	defer delete(onPath, id)

	// An array-shaped map encodes as the sequence it is classified as, so
	// that Equal values digest identically regardless of container variant.
	if value.IsArrayShaped(v) {
		vals, err := value.Values(v)
		if err != nil {
			return err
		}
		if err := writeByte(w, tagSeq); err != nil {
			return err
		}
		if err := writeLen(w, len(vals)); err != nil {
			return err
		}
		for _, item := range vals {
			if err := encode(w, item, onPath); err != nil {
				return err
			}
		}
		return nil
	}

	m, _ := v.AsMap()
	if err := writeByte(w, tagMap); err != nil {
		return err
	}
	if err := writeLen(w, m.Len()); err != nil {
		return err
	}
	for _, k := range m.SortedKeys() {
		if err := encode(w, k.Value(), onPath); err != nil {
			return err
		}
		item, _ := m.Get(k)
		if err := encode(w, item, onPath); err != nil {
			return err
		}
	}
	return nil
}

func containerID(v value.Value) any {
	if s, ok := v.AsSeq(); ok {
		return s
	}
	m, _ := v.AsMap()
	return m
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeLen(w io.Writer, n int) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	_, err := w.Write(buf[:])
	return err
}

// sumWith encodes v into h and returns the final sum.
func sumWith(h hash.Hash, v value.Value) ([]byte, error) {
	if err := encode(h, v, nil); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
