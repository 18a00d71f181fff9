package engine

import (
	"github.com/rokumon/rokumon/internal/board"
)

// Move ordering is a fixed category ranking, not MVV-LVA or history
// heuristics: there is no notion of a "quiet" move to learn about across
// a search, only five structurally distinct kinds. The PV move from the
// previous iteration is tried first regardless of kind.
const (
	ttMoveScore  = 1000
	fightScore   = 400
	moveScore    = 300
	placeScore   = 200
	submitScore  = 0
)

func categoryScore(k board.MoveKind) int {
	switch k {
	case board.KindFight:
		return fightScore
	case board.KindMove:
		return moveScore
	case board.KindPlace:
		return placeScore
	default:
		return submitScore
	}
}

// scoreMoves assigns an ordering score to every move in moves.
func scoreMoves(moves *board.MoveList, ttMove board.Move, hasTT bool) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if hasTT && m == ttMove {
			scores[i] = ttMoveScore
			continue
		}
		scores[i] = categoryScore(m.Kind)
	}
	return scores
}

// pickMove selects the best-scoring remaining move at or after index and
// swaps it into place, allowing lazy selection sort during search.
func pickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}
