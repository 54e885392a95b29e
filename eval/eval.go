// Package eval scores chess positions from the side-to-move's perspective.
package eval

import (
	"math/bits"

	"github.com/Oliverans/gooseknight/board"
)

func trailingZeros(bb board.Bitboard) int { return bits.TrailingZeros64(uint64(bb)) }

// Evaluator scores a position from the side-to-move's perspective: positive
// means the side to move is better, negative means worse. search.Search
// takes an Evaluator so the material+PST evaluator here and the HTTP-backed
// remoteeval.RemoteEvaluator are interchangeable.
type Evaluator interface {
	Evaluate(pos *board.Position) int
}

// pieceValues are classic centipawn material values.
var pieceValues = [7]int{
	board.NoKind: 0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   20000,
}

const doubledPawnPenalty = 10

// Material evaluates a position by material balance, piece-square tables,
// and a doubled-pawn penalty. It is the engine's default, dependency-free
// evaluator; RemoteEvaluator in package remoteeval is a drop-in alternative.
type Material struct{}

// Evaluate implements Evaluator.
func (Material) Evaluate(pos *board.Position) int {
	score := materialAndPST(pos, board.White) - materialAndPST(pos, board.Black)
	score -= doubledPawnPenalty * doubledPawnCount(pos, board.White)
	score += doubledPawnPenalty * doubledPawnCount(pos, board.Black)

	if pos.SideToMove() == board.Black {
		return -score
	}
	return score
}

func materialAndPST(pos *board.Position, c board.Colour) int {
	total := 0
	for k := board.Pawn; k <= board.King; k++ {
		bb := pos.Pieces(c, k)
		for bb != 0 {
			sq := board.Square(trailingZeros(bb))
			bb &= bb - 1
			total += pieceValues[k] + pstValue(k, sq, c)
		}
	}
	return total
}

func doubledPawnCount(pos *board.Position, c board.Colour) int {
	bb := pos.Pieces(c, board.Pawn)
	var perFile [8]int
	for bb != 0 {
		sq := board.Square(trailingZeros(bb))
		bb &= bb - 1
		perFile[sq.File()]++
	}
	extra := 0
	for _, n := range perFile {
		if n > 1 {
			extra += n - 1
		}
	}
	return extra
}

// pstValue looks up a piece-square table entry, mirroring the square for
// Black so every table is defined once from White's perspective.
func pstValue(k board.Kind, sq board.Square, c board.Colour) int {
	table := pieceSquareTables[k]
	if table == nil {
		return 0
	}
	if c == board.Black {
		sq = board.Square(63 - int(sq))
	}
	return table[sq]
}
