package board

import "math/bits"

func trailingZeros(bb Bitboard) int { return bits.TrailingZeros64(uint64(bb)) }

// popLSB returns the index of bb's least-significant set bit and bb with
// that bit cleared, for the common "iterate over set bits" loop:
//
//	for bb != 0 {
//	    var sq Square
//	    sq, bb = popLSB(bb)
//	    ...
//	}
func popLSB(bb Bitboard) (Square, Bitboard) {
	sq := Square(trailingZeros(bb))
	return sq, bb & (bb - 1)
}

func popCount(bb Bitboard) int { return bits.OnesCount64(uint64(bb)) }
