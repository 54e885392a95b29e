package board

import "testing"

func TestZobristDeterministic(t *testing.T) {
	a, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Error("two parses of the same FEN must produce the same Zobrist hash")
	}
}

func TestZobristDiffersForDifferentPositions(t *testing.T) {
	start := NewPosition()
	afterMove := NewPosition()
	afterMove.MakeMove(NewMove(12, 28, Pawn, NoKind, NoKind, FlagNone))
	if start.Hash() == afterMove.Hash() {
		t.Error("hash should change after a move")
	}
}

func TestZobristMatchesIncrementalAfterRoundTrip(t *testing.T) {
	pos := NewPosition()
	before := pos.Hash()
	pos.MakeMove(NewMove(12, 28, Pawn, NoKind, NoKind, FlagNone))
	pos.UnmakeMove()
	if pos.Hash() != before {
		t.Error("hash after make/unmake should equal the original hash")
	}
	if pos.Hash() != pos.computeZobrist() {
		t.Error("incremental hash has drifted from a from-scratch recomputation")
	}
}
