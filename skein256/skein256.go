// Package skein256 provides Skein-256: Skein hashing with a 256-bit
// internal Threefish state. Skein-256 is the right choice for digests up
// to 256 bits; larger digests are better served by skein512 or
// skein1024, though any of the three can produce any output length via
// the Skein output transform.
package skein256

import (
	"hash"

	"github.com/skein-hash/skein/skein"
)

// StateBits is the internal Threefish state size this package hashes
// under.
const StateBits = 256

// New returns a hash.Hash computing the Skein-256 checksum with the
// given output size in bits.
func New(outputBits int) hash.Hash {
	return skein.New(StateBits, outputBits)
}

// New256 returns a hash.Hash computing the ordinary 256-bit Skein-256
// digest.
func New256() hash.Hash {
	return New(256)
}

// Sum returns the Skein-256 digest of msg at the given output size in
// bits.
func Sum(msg []byte, outputBits int) []byte {
	return skein.SumAll(StateBits, outputBits, msg)
}

// Sum256 returns the 256-bit Skein-256 checksum of msg.
func Sum256(msg []byte) [32]byte {
	var out [32]byte
	copy(out[:], Sum(msg, 256))
	return out
}
