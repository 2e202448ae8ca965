package threefish

// IncrementTweak adds ctr message bytes to the tweak's byte counter (T0),
// carrying into the high word (T1) exactly as UBI requires: Skein messages
// are bounded to 2^96-1 bytes, so a T0 carry only ever increments T1's low
// 32 bits.
func IncrementTweak(tweak *[3]uint64, ctr uint64) {
	t0 := tweak[0]
	tweak[0] += ctr
	if tweak[0] < t0 {
		tweak[1] = (tweak[1] &^ 0x00000000FFFFFFFF) | ((tweak[1] + 1) & 0x00000000FFFFFFFF)
	}
}
