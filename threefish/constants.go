// Package threefish implements the Threefish tweakable block cipher in its
// three published widths (256, 512 and 1024 bits), the block cipher at the
// heart of the Skein hash function family.
package threefish

const (
	// TweakSize is the size of a Threefish tweak in bytes.
	TweakSize = 16

	// C240 is the key-schedule parity constant mixed into the last
	// key-schedule word of every width.
	C240 = 0x1BD11BDAA9FC1A22

	// BlockSize256 is the block size of Threefish-256 in bytes.
	BlockSize256 = 32
	// BlockSize512 is the block size of Threefish-512 in bytes.
	BlockSize512 = 64
	// BlockSize1024 is the block size of Threefish-1024 in bytes.
	BlockSize1024 = 128

	// words256 is the number of 64-bit words in the Threefish-256 state.
	words256 = BlockSize256 / 8
	// words512 is the number of 64-bit words in the Threefish-512 state.
	words512 = BlockSize512 / 8
	// words1024 is the number of 64-bit words in the Threefish-1024 state.
	words1024 = BlockSize1024 / 8

	// rounds256 and rounds512 run for 72 rounds (18 four-round key
	// injections beyond the initial whitening); rounds1024 runs for 80
	// (20 injections).
	rounds256  = 72
	rounds512  = 72
	rounds1024 = 80
)

// rot256 holds the MIX rotation amounts for Threefish-256: eight rounds per
// period, two word-pairs per round. Values are the published Skein v1.3
// constants and must not be changed.
var rot256 = [8][2]uint{
	{14, 16},
	{52, 57},
	{23, 40},
	{5, 37},
	{25, 33},
	{46, 12},
	{58, 22},
	{32, 32},
}

// perm256 is the fixed word permutation applied after every round of
// Threefish-256. perm256[i] names the source slot feeding destination
// slot i.
var perm256 = [words256]int{0, 3, 2, 1}

// rot512 holds the MIX rotation amounts for Threefish-512: eight rounds per
// period, four word-pairs per round.
var rot512 = [8][4]uint{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// perm512 is the fixed word permutation applied after every round of
// Threefish-512.
var perm512 = [words512]int{2, 1, 4, 7, 6, 5, 0, 3}

// rot1024 holds the MIX rotation amounts for Threefish-1024: eight rounds
// per period, eight word-pairs per round.
var rot1024 = [8][8]uint{
	{24, 13, 8, 47, 8, 17, 22, 37},
	{38, 19, 10, 55, 49, 18, 23, 52},
	{33, 4, 51, 13, 34, 41, 59, 17},
	{5, 20, 48, 41, 47, 28, 16, 25},
	{41, 9, 37, 31, 12, 47, 44, 30},
	{16, 34, 56, 51, 4, 53, 42, 41},
	{31, 44, 47, 46, 19, 42, 44, 25},
	{9, 48, 35, 52, 23, 31, 37, 20},
}

// perm1024 is the fixed word permutation applied after every round of
// Threefish-1024.
var perm1024 = [words1024]int{0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

func rotr64(x uint64, r uint) uint64 {
	return (x >> r) | (x << (64 - r))
}
