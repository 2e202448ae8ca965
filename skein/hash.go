package skein

import (
	"encoding/binary"

	"github.com/skein-hash/skein/threefish"
)

// Hasher is a Skein hash context for one of the three supported internal
// state sizes. It implements hash.Hash (Write/Sum/Reset/BlockSize/Size)
// plus WriteBits for bit-granular input. A Hasher is exclusively owned by
// its caller: there is no internal locking, and two goroutines must not
// share one without external synchronization.
type Hasher struct {
	eng       engine
	words     int
	blockSize int
	hashBits  int
	hashBytes int

	h   []uint64
	iv  []uint64
	tweak [3]uint64

	block     []byte
	off       int
	bitPadSet bool
}

// New returns a Skein hasher with the given internal state size
// (256, 512 or 1024 bits) configured to produce outputBits of digest.
// stateBits need not relate to outputBits: any state size can produce any
// output length via the output transform.
func New(stateBits, outputBits int) *Hasher {
	if outputBits <= 0 {
		panic(&ErrInvalidOutputSize{OutputBits: outputBits})
	}

	eng := engineFor(stateBits)
	w := eng.words()

	s := &Hasher{
		eng:       eng,
		words:     w,
		blockSize: w * 8,
		hashBits:  outputBits,
		hashBytes: (outputBits + 7) / 8,
		h:         make([]uint64, w),
		block:     make([]byte, w*8),
	}

	s.absorbConfig()

	s.iv = make([]uint64, w)
	copy(s.iv, s.h)

	s.Reset()
	return s
}

// absorbConfig folds the CFG block (schema ID, format version, requested
// output length) into an all-zero chaining state, producing the IV this
// Hasher resets to. This mirrors the reference convention of computing
// the IV via the engine itself rather than hard-coding a per-output-size
// constant table.
func (s *Hasher) absorbConfig() {
	cfg := make([]byte, cfgBlockBytes)
	binary.LittleEndian.PutUint64(cfg[0:8], schemaID)
	binary.LittleEndian.PutUint64(cfg[8:16], uint64(s.hashBits))

	s.tweak[0] = 0
	s.tweak[1] = cfgConfig<<56 | firstBlock

	_, _ = s.Write(cfg)
	s.finalizeHash()
}

// Reset discards all input written so far and returns the Hasher to its
// freshly-initialized state (post-CFG, pre-message).
func (s *Hasher) Reset() {
	for i := range s.block {
		s.block[i] = 0
	}
	s.off = 0
	s.bitPadSet = false

	copy(s.h, s.iv)

	s.tweak[0] = 0
	s.tweak[1] = cfgMessage<<56 | firstBlock
}

// BlockSize returns the Threefish block size backing this Hasher, in
// bytes.
func (s *Hasher) BlockSize() int { return s.blockSize }

// Size returns the configured digest size in bytes, rounded up if the
// requested output length isn't a multiple of 8 bits.
func (s *Hasher) Size() int { return s.hashBytes }

// Write buffers p, processing every completed block as it fills. It never
// returns an error and len(p) bytes are always consumed, matching
// hash.Hash.Write.
func (s *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	bs := s.blockSize

	dif := bs - s.off
	if s.off > 0 && len(p) > dif {
		s.off += copy(s.block[s.off:], p[:dif])
		p = p[dif:]
		if s.off == bs && len(p) > 0 {
			s.consumeBlock()
			s.off = 0
		}
	}

	if length := len(p); length > bs {
		nn := length - (length % bs)
		if length == nn {
			nn -= bs
		}
		for i := 0; i < nn; i += bs {
			copy(s.block, p[i:i+bs])
			s.consumeBlock()
		}
		p = p[nn:]
	}

	if len(p) > 0 {
		s.off += copy(s.block[s.off:], p)
	}
	return n, nil
}

// WriteBits is like Write but nbits counts bits rather than bytes: p must
// hold exactly ceil(nbits/8) bytes. When nbits isn't a multiple of 8, the
// trailing byte's surplus bits are replaced with the Skein bit-pad marker
// (a single 1 bit immediately after the message bits, zero beyond it) and
// the block's tweak is flagged accordingly. WriteBits with a non-byte
// length must be the last write before Sum.
func (s *Hasher) WriteBits(p []byte, nbits int) (int, error) {
	if (nbits+7)/8 != len(p) {
		panic(&ErrBitLengthMismatch{NumBits: nbits, BufLen: len(p)})
	}
	if s.bitPadSet {
		panic(&ErrBitPadAlreadySet{})
	}

	_, _ = s.Write(p)

	if nbits%8 != 0 {
		mask := byte(1 << (7 - uint(nbits&7)))
		s.block[s.off-1] = (s.block[s.off-1] & (0 - mask)) | mask
		s.tweak[1] |= bitPad
		s.bitPadSet = true
	}
	return len(p), nil
}

// Sum finalizes a copy of the hasher's state — leaving s itself untouched
// so further Writes may follow — runs the output transform, and returns
// the digest appended to b.
func (s *Hasher) Sum(b []byte) []byte {
	tmp := s.clone()
	// The final message block (even an entirely empty one) is mandatory:
	// a Skein digest of zero bytes still absorbs one zero-length,
	// first-and-final MSG block. There is no valid "no message block at
	// all" state, so finalization never depends on whether Write was
	// ever called.
	tmp.finalizeHash()

	out := make([]byte, 0, tmp.hashBytes+tmp.blockSize)
	var ctr uint64
	for len(out) < tmp.hashBytes {
		out = append(out, tmp.outputBlock(ctr)...)
		ctr++
	}
	out = out[:tmp.hashBytes]
	// When outputBits isn't a multiple of 8, keep only the high-order
	// bits of the trailing byte and zero the surplus ones.
	if rem := tmp.hashBits % 8; rem != 0 {
		out[len(out)-1] &= byte(0xFF << (8 - uint(rem)))
	}

	return append(b, out...)
}

func (s *Hasher) clone() *Hasher {
	h2 := make([]uint64, s.words)
	copy(h2, s.h)
	block2 := make([]byte, len(s.block))
	copy(block2, s.block)

	return &Hasher{
		eng:       s.eng,
		words:     s.words,
		blockSize: s.blockSize,
		hashBits:  s.hashBits,
		hashBytes: s.hashBytes,
		h:         h2,
		iv:        s.iv,
		tweak:     s.tweak,
		block:     block2,
		off:       s.off,
		bitPadSet: s.bitPadSet,
	}
}

func (s *Hasher) consumeBlock() {
	words := make([]uint64, s.words)
	bytesToWords(words, s.block)

	threefish.IncrementTweak(&s.tweak, uint64(s.blockSize))
	s.eng.ubi(words, s.h, &s.tweak)
	s.tweak[1] &^= firstBlock
}

func (s *Hasher) finalizeHash() {
	threefish.IncrementTweak(&s.tweak, uint64(s.off))
	s.tweak[1] |= finalBlock

	for i := s.off; i < len(s.block); i++ {
		s.block[i] = 0
	}
	s.off = 0

	words := make([]uint64, s.words)
	bytesToWords(words, s.block)
	s.eng.ubi(words, s.h, &s.tweak)
}

// outputBlock runs one counter-mode step of the Skein output transform:
// encrypt a block holding the little-endian counter (zero-padded) under
// the post-final chaining value, starting fresh from h every time so each
// counter block is independent.
func (s *Hasher) outputBlock(counter uint64) []byte {
	words := make([]uint64, s.words)
	words[0] = counter

	hCopy := make([]uint64, s.words)
	copy(hCopy, s.h)

	outTweak := [3]uint64{8, cfgOutput<<56 | firstBlock | finalBlock, 0}
	s.eng.ubi(words, hCopy, &outTweak)

	buf := make([]byte, s.blockSize)
	wordsToBytes(buf, hCopy)
	return buf
}

// SumAll is the one-shot convenience composition: New(stateBits,
// outputBits), Write(msg), Sum(nil).
func SumAll(stateBits, outputBits int, msg []byte) []byte {
	h := New(stateBits, outputBits)
	_, _ = h.Write(msg)
	return h.Sum(nil)
}
