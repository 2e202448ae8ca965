package skein256

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEmptyMessageKnownAnswer is the published Skein-256, empty message,
// 256-bit output test vector.
func TestEmptyMessageKnownAnswer(t *testing.T) {
	want, err := hex.DecodeString("c8877087da56e072870daa843f176e9453115929094c3a40c463a196c29bf7ba")
	require.NoError(t, err)
	require.Len(t, want, 32)

	got := Sum256(nil)
	require.Equal(t, want, got[:])
}

func TestSum256MatchesHashInterface(t *testing.T) {
	msg := []byte("skein256 front door")

	h := New256()
	_, _ = h.Write(msg)
	viaHash := h.Sum(nil)

	viaSum := Sum256(msg)
	require.Equal(t, viaHash, viaSum[:])
}

func TestBlockSizeAndSize(t *testing.T) {
	h := New(256)
	require.Equal(t, 32, h.BlockSize())
	require.Equal(t, 32, h.Size())
}
