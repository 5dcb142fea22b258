// Package digest computes structural fingerprints of dynamic values.
//
// # Architecture
//
// The central abstraction is the [Digester] interface. Two drivers ship with
// this package: [Blake2b] (cryptographic, 256-bit, optionally keyed) and
// [FNV] (fast, non-cryptographic, 64-bit). Both implement [Digester], so
// callers can depend on the interface rather than a concrete type.
//
// # Canonical encoding
//
// A fingerprint is the driver's hash of a canonical, kind-tagged encoding of
// the value. Map entries are encoded in a total key order and an array-shaped
// map is encoded as the sequence it is classified as, so logically equal
// containers digest identically:
//
//	value.Equal(a, b) == true  ⇒  Sum(a) == Sum(b)
//
// for any two acyclic values whose containers carry no custom equality
// metadata (a custom Equaler can relate values with different structure,
// which no content hash can follow).
//
// Funcs, handles, and cyclic containers have no content to encode and return
// [ErrNotDigestible].
//
// # Quick start
//
//	d := digest.NewFNV()
//	sum, err := d.Sum(value.SeqValue(value.Int(1), value.Int(2)))
//
//	unique, err := digest.Distinct(d, items)
package digest
