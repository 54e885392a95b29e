package search

import (
	"testing"

	"github.com/Oliverans/gooseknight/board"
	"github.com/Oliverans/gooseknight/eval"
)

// TestSearchLoneKingsReturnsALegalMove is the depth-1 search scenario this
// engine must handle cleanly: with only two kings on the board there is no
// material to evaluate and no capture to extend into quiescence, so the
// search must still terminate and hand back one of the legal king moves
// rather than a null move.
func TestSearchLoneKingsReturnsALegalMove(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	s := New(NewTranspositionTable(1), eval.Material{})
	result := s.SearchRoot(pos, Params{Depth: 1})

	if result.BestMove == 0 {
		t.Fatal("SearchRoot returned no move for a position with legal moves")
	}
	legal := board.GenerateLegal(pos)
	found := false
	for _, m := range legal {
		if m == result.BestMove {
			found = true
		}
	}
	if !found {
		t.Errorf("SearchRoot returned %s, which is not in the legal move list", result.BestMove)
	}
	if result.Score != 0 {
		t.Errorf("lone-king position should evaluate to 0, got %d", result.Score)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Qd8 is an unambiguous back-rank mate-in-one against a
	// king boxed in by its own pawns.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := New(NewTranspositionTable(1), eval.Material{})
	result := s.SearchRoot(pos, Params{Depth: 3})

	pos.MakeMove(result.BestMove)
	defer pos.UnmakeMove()
	if !pos.InCheck(board.Black) {
		t.Fatalf("expected SearchRoot to find a checking move, got %s", result.BestMove)
	}
	if len(board.GenerateLegal(pos)) != 0 {
		t.Errorf("expected the returned move to be checkmate, but Black still has legal moves")
	}
}

func TestSearchDoesNotReturnPartialDepthPastTimeLimit(t *testing.T) {
	pos := board.NewPosition()
	s := New(NewTranspositionTable(1), eval.Material{})
	result := s.SearchRoot(pos, Params{Depth: 4, TimeLimitMs: 1})

	if result.BestMove == 0 {
		t.Fatal("expected at least depth 1 to complete even under a very tight time limit")
	}
}

func TestOrderMovesPlacesHashMoveFirst(t *testing.T) {
	pos := board.NewPosition()
	moves := board.GenerateLegal(pos)
	hash := moves[len(moves)-1]

	var killers killerSlots
	var hist historyTable
	OrderMoves(moves, hash, &killers, 0, board.White, &hist)

	if moves[0] != hash {
		t.Errorf("expected hash move to sort first, got %s first", moves[0])
	}
}

func TestTranspositionTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(12, 28, board.Pawn, board.NoKind, board.NoKind, board.FlagNone)
	tt.Store(123456, 4, 99, m, BoundExact, 0)

	entry, ok := tt.Probe(123456, 0)
	if !ok {
		t.Fatal("expected a probe hit after storing")
	}
	if entry.score != 99 || entry.move != m || entry.bound != BoundExact {
		t.Errorf("probed entry %+v does not match stored values", entry)
	}

	if _, ok := tt.Probe(654321, 0); ok {
		t.Error("expected a probe miss for a key that was never stored")
	}
}

func TestTranspositionTableAgeInvalidatesOldEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(12, 28, board.Pawn, board.NoKind, board.NoKind, board.FlagNone)
	tt.Store(42, 4, 10, m, BoundExact, 0)
	tt.NewSearch()
	if _, ok := tt.Probe(42, 0); ok {
		t.Error("entries from a previous age should not be returned by Probe")
	}
}
