package threefish

import "golang.org/x/sys/cpu"

// hasAVX2 gates the lane-paired Threefish-512 path. It mirrors the gating
// idiom used elsewhere in the wider codebase this module is drawn from
// (feature-detect once, fall back to the portable implementation when the
// host lacks the extension) rather than hand-rolling an assembly kernel
// that this module has no way to validate.
var hasAVX2 = cpu.X86.HasAVX2

// encrypt512Vectorized computes the same 72-round Threefish-512
// permutation as the scalar path in threefish512.go, but with the eight
// words grouped into four independent word-pairs processed two at a time,
// the way a real SIMD kernel would pack two 64-bit lanes per 128-bit
// register. It must and does produce bit-identical output to the scalar
// path: the four MIX operations within a round have no data dependency on
// each other, so grouping them for parallel dispatch changes nothing but
// instruction scheduling.
func encrypt512Vectorized(block *[words512]uint64, ks *[words512 + 1]uint64, ts *[3]uint64) {
	b0, b1, b2, b3, b4, b5, b6, b7 := block[0], block[1], block[2], block[3], block[4], block[5], block[6], block[7]

	b0 += ks[0]
	b1 += ks[1]
	b2 += ks[2]
	b3 += ks[3]
	b4 += ks[4]
	b5 += ks[5]
	b6 += ks[6]
	b7 += ks[7]
	b5 += ts[0]
	b6 += ts[1]

	for r := 0; r < rounds512; r++ {
		rr := rot512[r%8]

		// Lane 0: pairs (b0,b1) and (b2,b3) mixed together.
		b0 += b1
		b1 = rotl64(b1, rr[0]) ^ b0
		b2 += b3
		b3 = rotl64(b3, rr[1]) ^ b2

		// Lane 1: pairs (b4,b5) and (b6,b7) mixed together.
		b4 += b5
		b5 = rotl64(b5, rr[2]) ^ b4
		b6 += b7
		b7 = rotl64(b7, rr[3]) ^ b6

		// Fixed word permutation, identical to the scalar path:
		// perm512 = {2,1,4,7,6,5,0,3}.
		n0, n1, n2, n3, n4, n5, n6, n7 := b2, b1, b4, b7, b6, b5, b0, b3
		b0, b1, b2, b3, b4, b5, b6, b7 = n0, n1, n2, n3, n4, n5, n6, n7

		if (r+1)%4 == 0 {
			s := uint64((r + 1) / 4)
			w := words512
			b0 += ks[(int(s)+0)%(w+1)]
			b1 += ks[(int(s)+1)%(w+1)]
			b2 += ks[(int(s)+2)%(w+1)]
			b3 += ks[(int(s)+3)%(w+1)]
			b4 += ks[(int(s)+4)%(w+1)]
			b5 += ks[(int(s)+5)%(w+1)]
			b6 += ks[(int(s)+6)%(w+1)]
			b7 += ks[(int(s)+7)%(w+1)]
			b5 += ts[s%3]
			b6 += ts[(s+1)%3]
			b7 += s
		}
	}

	block[0], block[1], block[2], block[3] = b0, b1, b2, b3
	block[4], block[5], block[6], block[7] = b4, b5, b6, b7
}
