// Package skein512 provides Skein-512: Skein hashing with a 512-bit
// internal Threefish state, the size used by most published Skein test
// vectors and the common default for general-purpose hashing.
package skein512

import (
	"hash"

	"github.com/skein-hash/skein/skein"
)

// StateBits is the internal Threefish state size this package hashes
// under.
const StateBits = 512

// New returns a hash.Hash computing the Skein-512 checksum with the
// given output size in bits.
func New(outputBits int) hash.Hash {
	return skein.New(StateBits, outputBits)
}

// New512 returns a hash.Hash computing the ordinary 512-bit Skein-512
// digest.
func New512() hash.Hash {
	return New(512)
}

// New256 returns a hash.Hash computing a 256-bit digest from the
// 512-bit Threefish state, matching the common "use the 512-bit state
// for everything" convention some Skein deployments follow.
func New256() hash.Hash {
	return New(256)
}

// Sum returns the Skein-512 digest of msg at the given output size in
// bits.
func Sum(msg []byte, outputBits int) []byte {
	return skein.SumAll(StateBits, outputBits, msg)
}

// Sum512 returns the 512-bit Skein-512 checksum of msg.
func Sum512(msg []byte) [64]byte {
	var out [64]byte
	copy(out[:], Sum(msg, 512))
	return out
}

// Sum256 returns a 256-bit Skein digest of msg computed from the 512-bit
// Threefish state.
func Sum256(msg []byte) [32]byte {
	var out [32]byte
	copy(out[:], Sum(msg, 256))
	return out
}
