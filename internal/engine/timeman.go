package engine

import "time"

// SearchLimits bounds one search call. A zero value means "no limit" for
// that dimension; at least one of Depth or MoveTime should be set.
// Unlike the teacher's UCI-style wtime/btime/increment bookkeeping,
// Rokumon has no clock exchange protocol, so time management is just a
// flat per-move budget.
type SearchLimits struct {
	Depth    int           // maximum depth (0 = MaxPly)
	MoveTime time.Duration // time budget for this move (0 = no limit)
}

func (l SearchLimits) maxDepth() int {
	if l.Depth > 0 {
		return l.Depth
	}
	return MaxPly
}
