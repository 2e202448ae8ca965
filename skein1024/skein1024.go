// Package skein1024 provides Skein-1024: Skein hashing with a 1024-bit
// internal Threefish state, for digests beyond 512 bits or applications
// that want the largest published Skein security margin.
package skein1024

import (
	"hash"

	"github.com/skein-hash/skein/skein"
)

// StateBits is the internal Threefish state size this package hashes
// under.
const StateBits = 1024

// New returns a hash.Hash computing the Skein-1024 checksum with the
// given output size in bits.
func New(outputBits int) hash.Hash {
	return skein.New(StateBits, outputBits)
}

// New1024 returns a hash.Hash computing the ordinary 1024-bit
// Skein-1024 digest.
func New1024() hash.Hash {
	return New(1024)
}

// Sum returns the Skein-1024 digest of msg at the given output size in
// bits.
func Sum(msg []byte, outputBits int) []byte {
	return skein.SumAll(StateBits, outputBits, msg)
}

// Sum1024 returns the 1024-bit Skein-1024 checksum of msg.
func Sum1024(msg []byte) [128]byte {
	var out [128]byte
	copy(out[:], Sum(msg, 1024))
	return out
}
