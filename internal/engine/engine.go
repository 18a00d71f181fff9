package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/rokumon/rokumon/internal/board"
)

// SearchInfo reports progress for one completed iterative-deepening
// depth, for a UI or shell to display.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// SearchResult is the outcome of a full search call: best move, signed
// evaluation, principal variation, and the statistics spec §4.6 requires
// (nodes examined, depth reached, whether that depth ran to completion).
type SearchResult struct {
	Move      board.Move
	Score     int
	PV        []board.Move
	Depth     int
	Nodes     uint64
	Completed bool
}

// Difficulty selects a canned search budget, the same shape as the
// teacher's but with Rokumon-appropriate depths: its tree is far
// shallower than chess's, so even "Hard" finishes in a few hundred
// milliseconds at these depths.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultySettings = map[Difficulty]SearchLimits{
	Easy:   {Depth: 3, MoveTime: 300 * time.Millisecond},
	Medium: {Depth: 6, MoveTime: 1 * time.Second},
	Hard:   {Depth: 12, MoveTime: 3 * time.Second},
}

// Engine drives iterative deepening over a single Searcher. There is no
// worker pool: spec mandates a single-threaded search, so the teacher's
// Lazy-SMP machinery has no Rokumon counterpart.
type Engine struct {
	tt       *TranspositionTable
	searcher *Searcher
	stopFlag atomic.Bool

	// Clock is the injected monotonic time source (milliseconds since an
	// arbitrary epoch), per spec §5's requirement that hosts without a
	// hardware monotonic clock can supply their own. Defaults to
	// board.DefaultClock.
	Clock board.Clock

	difficulty Difficulty

	OnInfo func(SearchInfo)
}

// NewEngine creates an Engine with a transposition table of ttSizeMB
// megabytes (0 disables the table entirely).
func NewEngine(ttSizeMB int) *Engine {
	var tt *TranspositionTable
	if ttSizeMB > 0 {
		tt = NewTranspositionTable(ttSizeMB)
	}
	return &Engine{
		tt:         tt,
		searcher:   NewSearcher(tt),
		difficulty: Medium,
		Clock:      board.DefaultClock,
	}
}

// SetDifficulty selects a canned search budget for subsequent Search
// calls that don't pass explicit SearchLimits.
func (e *Engine) SetDifficulty(d Difficulty) { e.difficulty = d }

// Search finds the best move for g's side to move, at the engine's
// configured difficulty.
func (e *Engine) Search(g *board.Game) board.Move {
	res := e.SearchWithLimits(g, difficultySettings[e.difficulty])
	return res.Move
}

// SearchWithLimits runs iterative deepening from depth 1 up to
// limits.maxDepth(), stopping early on a MoveTime deadline or on finding
// a forced mate. Each completed depth is reported via OnInfo. Per spec
// §4.6, a depth that is aborted mid-search by the deadline is discarded
// entirely in favor of the last depth that ran to completion, and the
// returned SearchResult.Completed reflects whether the very last
// iteration attempted finished or was cut short.
func (e *Engine) SearchWithLimits(g *board.Game, limits SearchLimits) SearchResult {
	e.stopFlag.Store(false)
	if e.tt != nil {
		e.tt.NewSearch()
	}
	clock := e.Clock
	if clock == nil {
		clock = board.DefaultClock
	}
	log.Printf("[engine] search start: side=%s plies=%d", g.SideToMove(), g.Plies())

	start := time.Now()
	startMs := clock()
	var deadlineMs int64
	if limits.MoveTime > 0 {
		deadlineMs = startMs + limits.MoveTime.Milliseconds()
	}
	maxDepth := limits.maxDepth()

	var best SearchResult
	for depth := 1; depth <= maxDepth; depth++ {
		if deadlineMs > 0 && clock() >= deadlineMs {
			break
		}
		if e.stopFlag.Load() {
			break
		}

		e.searcher.SetDeadline(clock, deadlineMs)
		move, score := e.searcher.Search(g, depth)

		if e.searcher.TimedOut() || e.searcher.stopFlag.Load() {
			// This depth's partial result is unreliable; keep the prior
			// depth's result and report it as not completed.
			best.Completed = false
			break
		}

		best = SearchResult{
			Move:      move,
			Score:     score,
			PV:        e.searcher.GetPV(),
			Depth:     depth,
			Nodes:     e.searcher.Nodes(),
			Completed: true,
		}
		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth: depth,
				Score: score,
				Nodes: e.searcher.Nodes(),
				Time:  time.Since(start),
				PV:    best.PV,
			})
		}

		if score > MateScore-MaxPly || score < -MateScore+MaxPly {
			break
		}
	}

	log.Printf("[engine] search done: depth=%d score=%d move=%s completed=%v", best.Depth, best.Score, best.Move, best.Completed)
	return best
}

// Stop requests the in-progress search to return as soon as possible.
func (e *Engine) Stop() {
	e.stopFlag.Store(true)
	e.searcher.Stop()
}

// Clear resets the transposition table.
func (e *Engine) Clear() {
	if e.tt != nil {
		e.tt.Clear()
	}
}

// ScoreToString renders a score the way a textual shell displays it: a
// mate distance when near MateScore, otherwise a plain signed integer.
func ScoreToString(score int) string {
	if score > MateScore-MaxPly {
		plies := MateScore - score
		return "mate " + itoa((plies+1)/2)
	}
	if score < -MateScore+MaxPly {
		plies := MateScore + score
		return "mate -" + itoa((plies+1)/2)
	}
	return itoa(score)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
