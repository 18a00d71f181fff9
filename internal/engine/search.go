package engine

import (
	"sync/atomic"

	"github.com/rokumon/rokumon/internal/board"
)

// nodeCheckMask samples the clock/stop-flag at most every 1024 nodes, per
// spec: coarse enough to avoid clock overhead on every node.
const nodeCheckMask = 1023

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// PVTable stores the principal variation found at each ply.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher performs a single fixed-depth negamax search. Unlike the
// teacher, it is strictly single-threaded: Rokumon positions are small
// enough that a Lazy-SMP worker pool buys nothing but complexity.
type Searcher struct {
	tt *TranspositionTable

	clock      board.Clock
	deadlineMs int64 // 0 = no deadline

	nodes    uint64
	stopFlag atomic.Bool
	timedOut bool

	pv PVTable
}

// NewSearcher creates a Searcher using tt (which may be nil to disable
// the transposition table).
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt, clock: board.DefaultClock}
}

// Stop signals the search to return as soon as it next checks.
func (s *Searcher) Stop() { s.stopFlag.Store(true) }

// SetDeadline arms a wall-clock abort for the next Search call: once
// clock() reaches deadlineMs, the in-progress negamax unwinds to the
// root at its next sampled node. deadlineMs == 0 disables the check.
func (s *Searcher) SetDeadline(clock board.Clock, deadlineMs int64) {
	if clock != nil {
		s.clock = clock
	}
	s.deadlineMs = deadlineMs
}

// TimedOut reports whether the most recent Search call was aborted by
// the deadline (as opposed to an external Stop or running to completion).
func (s *Searcher) TimedOut() bool { return s.timedOut }

// Reset clears per-search state.
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.nodes = 0
	s.timedOut = false
}

// Nodes returns the number of nodes visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs a fixed-depth negamax search from g, which is cloned so
// the caller's Game is never mutated.
func (s *Searcher) Search(g *board.Game, depth int) (board.Move, int) {
	s.Reset()
	work := g.Clone()
	score := s.negamax(work, depth, 0, -Infinity, Infinity)

	var best board.Move
	if s.pv.length[0] > 0 {
		best = s.pv.moves[0][0]
	}
	return best, score
}

// GetPV returns the principal variation found by the last search.
func (s *Searcher) GetPV() []board.Move {
	pv := make([]board.Move, s.pv.length[0])
	copy(pv, s.pv.moves[0][:s.pv.length[0]])
	return pv
}

// negamax searches g to the given depth. The Result()-before-movegen
// check is what detects terminal positions, not an empty move list:
// LegalMoves always includes Submit while the game is in progress, so a
// "no moves" test would never fire. A decisive result is scored from the
// side to move's perspective by comparing the winner against it: usually
// the side to move has just lost, but a Move or Fight that uncovers an
// opponent's die can complete the opponent's triple, leaving the winner
// to move.
func (s *Searcher) negamax(g *board.Game, depth, ply int, alpha, beta int) int {
	if s.nodes&nodeCheckMask == 0 {
		if s.stopFlag.Load() {
			return 0
		}
		if s.deadlineMs > 0 && s.clock() >= s.deadlineMs {
			s.timedOut = true
			s.stopFlag.Store(true)
			return 0
		}
	}
	s.nodes++
	s.pv.length[ply] = ply

	if g.Result() != board.InProgress {
		if g.Result() == board.Draw {
			return 0
		}
		if (g.Result() == board.Player1Won) == (g.SideToMove() == board.Player1) {
			return MateScore - ply
		}
		return -MateScore + ply
	}

	if depth <= 0 {
		return Evaluate(g)
	}

	var ttMove board.Move
	hasTT := false
	if s.tt != nil {
		if entry, found := s.tt.Probe(g.Hash()); found {
			ttMove = entry.BestMove
			hasTT = true
			if ply > 0 && int(entry.Depth) >= depth {
				score := AdjustScoreFromTT(int(entry.Score), ply)
				switch entry.Flag {
				case TTExact:
					return score
				case TTLowerBound:
					if score > alpha {
						alpha = score
					}
				case TTUpperBound:
					if score < beta {
						beta = score
					}
				}
				if alpha >= beta {
					return score
				}
			}
		}
	}

	moves := board.LegalMoves(g)
	scores := scoreMoves(moves, ttMove, hasTT)

	bestScore := -Infinity
	var bestMove board.Move
	flag := TTUpperBound

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)

		if err := g.Apply(m); err != nil {
			continue
		}

		var score int
		if m.Kind == board.KindSubmit {
			score = s.negamax(g, depth-1, ply+1, alpha, beta)
		} else {
			score = -s.negamax(g, depth-1, ply+1, -beta, -alpha)
		}

		g.Undo()

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				flag = TTExact

				s.pv.moves[ply][ply] = m
				for j := ply + 1; j < s.pv.length[ply+1]; j++ {
					s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
				}
				s.pv.length[ply] = s.pv.length[ply+1]
			}
		}

		if score >= beta {
			if s.tt != nil {
				s.tt.Store(g.Hash(), depth, AdjustScoreToTT(score, ply), TTLowerBound, bestMove)
			}
			return score
		}
	}

	if s.tt != nil {
		s.tt.Store(g.Hash(), depth, AdjustScoreToTT(bestScore, ply), flag, bestMove)
	}
	return bestScore
}
