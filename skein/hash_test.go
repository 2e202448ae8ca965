package skein

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func pseudoRandomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	_, _ = r.Read(buf)
	return buf
}

// TestIncrementalMatchesOneShot covers testable property 5: splitting a
// 1000-byte message into chunks of {1, 17, 64, 918} must produce the same
// digest as hashing it in one call.
func TestIncrementalMatchesOneShot(t *testing.T) {
	msg := pseudoRandomBytes(1, 1000)

	oneShot := SumAll(512, 512, msg)

	h := New(512, 512)
	chunks := []int{1, 17, 64, 918}
	off := 0
	for _, c := range chunks {
		_, _ = h.Write(msg[off : off+c])
		off += c
	}
	require.Equal(t, len(msg), off)
	incremental := h.Sum(nil)

	require.Equal(t, oneShot, incremental)
}

// TestTruncatedDigestIsPrefix covers testable property 6: a 128-bit
// digest must equal the first 16 bytes of the 256-bit digest of the same
// message and state size.
func TestTruncatedDigestIsPrefix(t *testing.T) {
	msg := pseudoRandomBytes(2, 237)

	short := SumAll(256, 128, msg)
	long := SumAll(256, 256, msg)

	require.Equal(t, short, long[:16])
}

// TestWriteSplitEquivalence covers the ordering guarantee from the
// concurrency section: Write(a); Write(b) must equal Write(a||b).
func TestWriteSplitEquivalence(t *testing.T) {
	a := pseudoRandomBytes(3, 53)
	b := pseudoRandomBytes(4, 91)
	whole := append(append([]byte{}, a...), b...)

	h1 := New(512, 256)
	_, _ = h1.Write(whole)
	d1 := h1.Sum(nil)

	h2 := New(512, 256)
	_, _ = h2.Write(a)
	_, _ = h2.Write(b)
	d2 := h2.Sum(nil)

	require.Equal(t, d1, d2)
}

// TestSumDoesNotDisturbFurtherWrites ensures Sum operates on a private
// copy: calling Sum mid-stream and then writing more data must give the
// same result as never having called Sum.
func TestSumDoesNotDisturbFurtherWrites(t *testing.T) {
	a := pseudoRandomBytes(5, 40)
	b := pseudoRandomBytes(6, 60)

	h1 := New(256, 256)
	_, _ = h1.Write(a)
	_ = h1.Sum(nil)
	_, _ = h1.Write(b)
	d1 := h1.Sum(nil)

	h2 := New(256, 256)
	_, _ = h2.Write(a)
	_, _ = h2.Write(b)
	d2 := h2.Sum(nil)

	require.Equal(t, d2, d1)
}

// TestBitPadDistinguishesTrailingBits covers the open question on
// bit-length pad encoding: a byte-aligned message and the same bytes with
// the last four bits dropped must hash differently even though both
// occupy the same number of bytes.
func TestBitPadDistinguishesTrailingBits(t *testing.T) {
	full := []byte{0xAB, 0xCD, 0xEF}

	h1 := New(256, 256)
	_, _ = h1.Write(full)
	d1 := h1.Sum(nil)

	h2 := New(256, 256)
	_, _ = h2.WriteBits(full, 24)
	d2 := h2.Sum(nil)
	require.Equal(t, d1, d2, "a byte-aligned WriteBits must match Write")

	h3 := New(256, 256)
	_, _ = h3.WriteBits(full, 20)
	d3 := h3.Sum(nil)
	require.NotEqual(t, d1, d3, "a partial trailing nibble must change the digest")
}

func TestResetReturnsToIV(t *testing.T) {
	h := New(512, 512)
	base := h.Sum(nil)

	_, _ = h.Write([]byte("disturb the state"))
	_ = h.Sum(nil)
	h.Reset()

	again := h.Sum(nil)
	require.Equal(t, base, again)
}

func TestNewPanicsOnInvalidStateSize(t *testing.T) {
	require.Panics(t, func() {
		New(384, 256)
	})
}

func TestNewPanicsOnInvalidOutputSize(t *testing.T) {
	require.Panics(t, func() {
		New(512, 0)
	})
}
