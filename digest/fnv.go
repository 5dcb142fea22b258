package digest

import (
	"hash/fnv"

	"github.com/hasbyte1/go-underscore-utils/value"
)

// FNV is a fast, non-cryptographic [Digester] producing 64-bit FNV-1a
// fingerprints. The right default for in-process deduplication and memo
// keys; use [Blake2b] when collision resistance matters.
type FNV struct{}

// NewFNV creates an FNV-1a digester.
func NewFNV() *FNV { return &FNV{} }

// Sum returns the 8-byte FNV-1a fingerprint of v.
func (d *FNV) Sum(v value.Value) ([]byte, error) {
	return sumWith(fnv.New64a(), v)
}
