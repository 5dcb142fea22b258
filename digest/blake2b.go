package digest

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-underscore-utils/value"
)

// Blake2b is a cryptographic [Digester] producing 256-bit fingerprints.
//
// Use the keyed variant when fingerprints cross a trust boundary (e.g. as
// cache keys an untrusted party can probe); the key turns the digest into a
// MAC over the canonical encoding.
type Blake2b struct {
	key []byte
}

// NewBlake2b creates an unkeyed BLAKE2b-256 digester.
func NewBlake2b() *Blake2b { return &Blake2b{} }

// NewKeyedBlake2b creates a keyed BLAKE2b-256 digester.
// The key must be at most 64 bytes.
func NewKeyedBlake2b(key []byte) (*Blake2b, error) {
	if len(key) > 64 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	dup := make([]byte, len(key))
	copy(dup, key)
	return &Blake2b{key: dup}, nil
}

// Sum returns the BLAKE2b-256 fingerprint of v.
func (d *Blake2b) Sum(v value.Value) ([]byte, error) {
	h, err := blake2b.New256(d.key)
	if err != nil {
		return nil, fmt.Errorf("digest: blake2b init: %w", err)
	}
	return sumWith(h, v)
}
