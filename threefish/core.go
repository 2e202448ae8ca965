package threefish

// encryptGeneric runs the Threefish round function over X in place. X, ks
// and rot must agree on the word count W (len(X) == len(ks)-1 ==
// len(perm) == len(rot[0])*2). ts is the three-word tweak schedule. This is
// the single implementation shared by all three widths; the per-width
// Encrypt functions in threefish256.go, threefish512.go and
// threefish1024.go wrap it so callers can pass fixed-size arrays.
func encryptGeneric(X []uint64, ks []uint64, ts *[3]uint64, rot [][]uint, perm []int, rounds int) {
	w := len(X)

	for i := range X {
		X[i] += ks[i]
	}
	X[w-3] += ts[0]
	X[w-2] += ts[1]

	tmp := make([]uint64, w)
	for r := 0; r < rounds; r++ {
		d := r % 8
		pairs := rot[d]
		for j, amt := range pairs {
			a := X[2*j] + X[2*j+1]
			b := rotl64(X[2*j+1], amt) ^ a
			X[2*j], X[2*j+1] = a, b
		}

		for i, src := range perm {
			tmp[i] = X[src]
		}
		copy(X, tmp)

		if (r+1)%4 == 0 {
			s := uint64((r + 1) / 4)
			for i := range X {
				X[i] += ks[(int(s)+i)%(w+1)]
			}
			X[w-3] += ts[s%3]
			X[w-2] += ts[(s+1)%3]
			X[w-1] += s
		}
	}
}

// decryptGeneric inverts encryptGeneric.
func decryptGeneric(X []uint64, ks []uint64, ts *[3]uint64, rot [][]uint, invPerm []int, rounds int) {
	w := len(X)
	tmp := make([]uint64, w)

	for r := rounds - 1; r >= 0; r-- {
		if (r+1)%4 == 0 {
			s := uint64((r + 1) / 4)
			X[w-1] -= s
			X[w-2] -= ts[(s+1)%3]
			X[w-3] -= ts[s%3]
			for i := range X {
				X[i] -= ks[(int(s)+i)%(w+1)]
			}
		}

		for i, src := range invPerm {
			tmp[i] = X[src]
		}
		copy(X, tmp)

		d := r % 8
		pairs := rot[d]
		for j, amt := range pairs {
			a, b := X[2*j], X[2*j+1]
			bRot := b ^ a
			bOrig := rotr64(bRot, amt)
			X[2*j], X[2*j+1] = a-bOrig, bOrig
		}
	}

	X[w-3] -= ts[0]
	X[w-2] -= ts[1]
	for i := range X {
		X[i] -= ks[i]
	}
}

func invertPermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

func rotSlices2(r [8][2]uint) [8][]uint {
	var out [8][]uint
	for i := range r {
		row := r[i]
		out[i] = row[:]
	}
	return out
}

func rotSlices4(r [8][4]uint) [8][]uint {
	var out [8][]uint
	for i := range r {
		row := r[i]
		out[i] = row[:]
	}
	return out
}

func rotSlices8(r [8][8]uint) [8][]uint {
	var out [8][]uint
	for i := range r {
		row := r[i]
		out[i] = row[:]
	}
	return out
}
