package board

import "testing"

func TestMakeUnmakeDoublePawnPush(t *testing.T) {
	pos := NewPosition()
	before := *pos

	m := NewMove(12, 28, Pawn, NoKind, NoKind, FlagNone) // e2e4
	pos.MakeMove(m)

	if pos.PieceAt(12) != NoPiece {
		t.Errorf("origin square e2 still occupied after push")
	}
	if pos.PieceAt(28).Kind() != Pawn || pos.PieceAt(28).Colour() != White {
		t.Errorf("destination square e4 does not hold a white pawn")
	}
	if pos.EnPassant() != 20 { // e3
		t.Errorf("EnPassant() = %v, want e3 (20)", pos.EnPassant())
	}
	if pos.SideToMove() != Black {
		t.Errorf("SideToMove() = %v, want Black", pos.SideToMove())
	}
	if pos.HalfmoveClock() != 0 {
		t.Errorf("HalfmoveClock() = %d, want 0 after a pawn move", pos.HalfmoveClock())
	}

	pos.UnmakeMove()

	if pos.hash != before.hash {
		t.Errorf("hash not restored: got %x want %x", pos.hash, before.hash)
	}
	if pos.mailbox != before.mailbox {
		t.Errorf("mailbox not restored to starting position")
	}
	if pos.occupancy != before.occupancy {
		t.Errorf("occupancy not restored to starting position")
	}
	if pos.sideToMove != before.sideToMove {
		t.Errorf("sideToMove not restored")
	}
	if pos.epSquare != before.epSquare {
		t.Errorf("epSquare not restored")
	}
}

func TestUnmakeWithNoHistoryIsNoOp(t *testing.T) {
	pos := NewPosition()
	before := *pos
	pos.UnmakeMove()
	if pos.hash != before.hash || pos.mailbox != before.mailbox {
		t.Error("UnmakeMove with empty history mutated the position")
	}
}

func TestMakeUnmakeCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := *pos

	m := NewMove(4, 6, King, NoKind, NoKind, FlagCastleK) // e1g1
	pos.MakeMove(m)

	if pos.PieceAt(6).Kind() != King {
		t.Errorf("king did not land on g1")
	}
	if pos.PieceAt(5).Kind() != Rook {
		t.Errorf("rook did not land on f1")
	}
	if pos.PieceAt(7) != NoPiece {
		t.Errorf("h1 should be empty after castling")
	}
	if pos.CastlingRights()&(WhiteKingside|WhiteQueenside) != 0 {
		t.Errorf("white castling rights should be cleared after castling")
	}

	pos.UnmakeMove()
	if pos.mailbox != before.mailbox || pos.hash != before.hash || pos.castling != before.castling {
		t.Errorf("unmake did not restore pre-castling state")
	}
}

func TestMakeUnmakeEnPassantCapture(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := *pos

	m := NewMove(36, 43, Pawn, Pawn, NoKind, FlagEnPassant) // e5d6 e.p.
	pos.MakeMove(m)

	if pos.PieceAt(43).Kind() != Pawn {
		t.Errorf("capturing pawn did not land on d6")
	}
	if pos.PieceAt(35) != NoPiece {
		t.Errorf("captured pawn on d5 should be removed")
	}

	pos.UnmakeMove()
	if pos.mailbox != before.mailbox || pos.hash != before.hash {
		t.Errorf("unmake did not restore pre-en-passant state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := NewPosition()
	clone := pos.Clone()
	clone.MakeMove(NewMove(12, 28, Pawn, NoKind, NoKind, FlagNone))

	if pos.PieceAt(12) == NoPiece {
		t.Error("mutating the clone affected the original position")
	}
	if len(pos.history) != 0 {
		t.Error("cloning should not affect the original's history")
	}
}

func TestInCheckDetection(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.InCheck(White) {
		t.Error("white king should not be in check here")
	}

	pos2, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos2.InCheck(White) {
		t.Error("white king should be in check from the rook on e2")
	}
}
