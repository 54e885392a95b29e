package search

import (
	"time"

	"github.com/Oliverans/gooseknight/board"
	"github.com/Oliverans/gooseknight/eval"
)

// MateScore is the score assigned to an immediate checkmate; scores closer
// to zero than this by up to maxPly represent a forced mate some number of
// plies away.
const MateScore = 30000

// Params controls one SearchRoot call.
type Params struct {
	Depth       int   // maximum iterative-deepening depth
	TimeLimitMs int64 // 0 means no time limit
}

// Result is the outcome of a completed (or time-cut) SearchRoot call.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int // deepest iteration fully completed
}

// Search holds everything that persists across the plies and iterations of
// a single SearchRoot call: the transposition table, killer moves, history
// table, and the evaluator used at leaf nodes.
type Search struct {
	TT       *TranspositionTable
	Eval     eval.Evaluator
	killers  killerSlots
	history  historyTable
	deadline time.Time
	timed    bool
	nodes    uint64
}

// New returns a Search using tt for transpositions and ev to score leaves.
func New(tt *TranspositionTable, ev eval.Evaluator) *Search {
	return &Search{TT: tt, Eval: ev}
}

// SearchRoot runs iterative deepening from depth 1 up to params.Depth,
// returning the best move found at the deepest fully-completed depth. A
// partially searched depth is never returned, per the engine's time-limit
// contract: if params.TimeLimitMs elapses, the loop stops at the start of
// the next iteration and the previous iteration's result stands.
func (s *Search) SearchRoot(pos *board.Position, params Params) Result {
	s.killers = killerSlots{}
	s.history.Clear()
	s.TT.NewSearch()
	s.nodes = 0

	s.timed = params.TimeLimitMs > 0
	if s.timed {
		s.deadline = time.Now().Add(time.Duration(params.TimeLimitMs) * time.Millisecond)
	}

	var best Result
	maxDepth := params.Depth
	if maxDepth <= 0 {
		maxDepth = 1
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.timed && time.Now().After(s.deadline) {
			break
		}
		score, move := s.searchOneDepth(pos, depth)
		if move != 0 {
			best = Result{BestMove: move, Score: score, Depth: depth}
		}
	}
	return best
}

func (s *Search) searchOneDepth(pos *board.Position, depth int) (int, board.Move) {
	moves := board.GenerateLegal(pos)
	if len(moves) == 0 {
		return 0, 0
	}

	hashMove := board.Move(0)
	if entry, ok := s.TT.Probe(pos.Hash(), 0); ok {
		hashMove = entry.move
	}
	OrderMoves(moves, hashMove, &s.killers, 0, pos.SideToMove(), &s.history)

	alpha, beta := -MateScore-1, MateScore+1
	best := moves[0]
	bestScore := alpha

	for i, m := range moves {
		pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove()

		if score > bestScore || i == 0 {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	s.TT.Store(pos.Hash(), int8(depth), bestScore, best, BoundExact, 0)
	return bestScore, best
}

// negamax searches pos to depth plies (0 hands off to quiescence), returning
// a score from the side-to-move's perspective.
func (s *Search) negamax(pos *board.Position, depth, ply int, alpha, beta int) int {
	s.nodes++

	origAlpha := alpha
	hashMove := board.Move(0)

	if entry, ok := s.TT.Probe(pos.Hash(), ply); ok {
		hashMove = entry.move
		if int(entry.depth) >= depth {
			switch entry.bound {
			case BoundExact:
				return entry.score
			case BoundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case BoundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	moves := board.GenerateLegal(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -MateScore + ply // checkmated: the fewer plies to get here, the worse
		}
		return 0 // stalemate
	}

	us := pos.SideToMove()
	OrderMoves(moves, hashMove, &s.killers, ply, us, &s.history)

	best := moves[0]
	bestScore := -MateScore - 1

	for _, m := range moves {
		pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				s.killers.Add(ply, m)
				s.history.Update(us, m, depth)
			}
			break
		}
	}

	bound := BoundExact
	switch {
	case bestScore <= origAlpha:
		bound = BoundUpper
	case bestScore >= beta:
		bound = BoundLower
	}
	s.TT.Store(pos.Hash(), int8(depth), bestScore, best, bound, ply)

	return bestScore
}

// quiescence extends search along capture chains past the nominal leaf
// depth to avoid the horizon effect: a side that can recapture material
// the instant the main search stops looking would otherwise be evaluated
// mid-exchange. Checks and check evasions are deliberately not considered
// here, matching the scope of the search this was modelled on.
func (s *Search) quiescence(pos *board.Position, ply int, alpha, beta int) int {
	s.nodes++

	standPat := s.Eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := board.GenerateLegal(pos)
	captures := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	OrderMoves(captures, 0, &s.killers, ply, pos.SideToMove(), &s.history)

	for _, m := range captures {
		pos.MakeMove(m)
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// Nodes returns how many nodes the most recent SearchRoot call visited.
func (s *Search) Nodes() uint64 { return s.nodes }
