package hash

import "github.com/cespare/xxhash/v2"

// IndexSize is the number of slots addressed by Index.
const IndexSize = 64

// Index returns the cache slot of a packed RGBA pixel:
// (R*3 + G*5 + B*7 + A*11) mod 64.
func Index(p uint32) uint8 {
	r := int(p >> 24 & 0xFF)
	g := int(p >> 16 & 0xFF)
	b := int(p >> 8 & 0xFF)
	a := int(p & 0xFF)

	return uint8((r*3 + g*5 + b*7 + a*11) % IndexSize)
}

// Digest computes the xxHash64 of an encoded stream.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// NewDigest returns a streaming xxHash64 digest, equivalent to Digest over
// everything written to it.
func NewDigest() *xxhash.Digest {
	return xxhash.New()
}
