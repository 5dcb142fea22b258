package digest

import (
	"github.com/hasbyte1/go-underscore-utils/value"
)

// Distinct returns a new sequence with deep-equal duplicates removed,
// preserving the first occurrence of each distinct value.
//
// v must be a sequence (a seq or an array-shaped map); elements are compared
// by fingerprint, so every element must be digestible. Two elements collide
// only when their canonical encodings match, which for digestible values
// coincides with [value.Equal].
func Distinct(d Digester, v value.Value) (value.Value, error) {
	if d == nil {
		return value.Nil(), ErrNilDigester
	}
	s, err := value.ToSeq(v)
	if err != nil {
		return value.Nil(), err
	}
	seen := make(map[string]struct{}, s.Len())
	out := make([]value.Value, 0, s.Len())
	for _, item := range s.Items() {
		sum, err := d.Sum(item)
		if err != nil {
			return value.Nil(), err
		}
		fp := string(sum)
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, item)
	}
	return value.SeqFrom(out).Value(), nil
}
