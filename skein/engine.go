package skein

import "github.com/skein-hash/skein/threefish"

// engine is the generic collaborator the streaming shell drives: "the
// Threefish-N permutation applied per message block". The shell never
// touches Threefish directly so that it can be written once and
// parameterized over width, instead of being duplicated per state size.
type engine interface {
	words() int
	ubi(block []uint64, h []uint64, tweak *[3]uint64)
}

type engine256 struct{}

func (engine256) words() int { return 4 }

func (engine256) ubi(block, h []uint64, tweak *[3]uint64) {
	var b [4]uint64
	copy(b[:], block)
	var hh [5]uint64
	copy(hh[:], h)

	threefish.UBI256(&b, &hh, tweak)

	copy(block, b[:])
	copy(h, hh[:4])
}

type engine512 struct{}

func (engine512) words() int { return 8 }

func (engine512) ubi(block, h []uint64, tweak *[3]uint64) {
	var b [8]uint64
	copy(b[:], block)
	var hh [9]uint64
	copy(hh[:], h)

	threefish.UBI512(&b, &hh, tweak)

	copy(block, b[:])
	copy(h, hh[:8])
}

type engine1024 struct{}

func (engine1024) words() int { return 16 }

func (engine1024) ubi(block, h []uint64, tweak *[3]uint64) {
	var b [16]uint64
	copy(b[:], block)
	var hh [17]uint64
	copy(hh[:], h)

	threefish.UBI1024(&b, &hh, tweak)

	copy(block, b[:])
	copy(h, hh[:16])
}

// engineFor picks the engine for a requested internal state size. The
// caller chooses the state size; this module imposes no relationship
// between state size and output length beyond what the output transform
// already provides (any state size can produce any output length).
func engineFor(stateBits int) engine {
	switch stateBits {
	case 256:
		return engine256{}
	case 512:
		return engine512{}
	case 1024:
		return engine1024{}
	default:
		panic(&ErrInvalidStateSize{StateBits: stateBits})
	}
}

func bytesToWords(dst []uint64, src []byte) {
	for i := range dst {
		j := i * 8
		dst[i] = uint64(src[j]) | uint64(src[j+1])<<8 | uint64(src[j+2])<<16 | uint64(src[j+3])<<24 |
			uint64(src[j+4])<<32 | uint64(src[j+5])<<40 | uint64(src[j+6])<<48 | uint64(src[j+7])<<56
	}
}

func wordsToBytes(dst []byte, src []uint64) {
	for i, v := range src {
		j := i * 8
		dst[j] = byte(v)
		dst[j+1] = byte(v >> 8)
		dst[j+2] = byte(v >> 16)
		dst[j+3] = byte(v >> 24)
		dst[j+4] = byte(v >> 32)
		dst[j+5] = byte(v >> 40)
		dst[j+6] = byte(v >> 48)
		dst[j+7] = byte(v >> 56)
	}
}
