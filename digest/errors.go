package digest

import "errors"

// Sentinel errors returned by digest operations.
var (
	// ErrNotDigestible is returned when a value has no canonical content to
	// hash: funcs, handles, and cyclic containers.
	ErrNotDigestible = errors.New("digest: value is not digestible")

	// ErrNilDigester is returned by [Distinct] when no digester is supplied.
	ErrNilDigester = errors.New("digest: digester must not be nil")

	// ErrInvalidKeyLength is returned by [NewKeyedBlake2b] when the key
	// exceeds the 64-byte limit of BLAKE2b.
	ErrInvalidKeyLength = errors.New("digest: key must be at most 64 bytes")
)
