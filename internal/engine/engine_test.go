package engine

import (
	"testing"
	"time"

	"github.com/rokumon/rokumon/internal/board"
)

func newTestGame(t *testing.T) *board.Game {
	t.Helper()
	g, err := board.NewGame(board.DefaultOptions(board.Bricks7), board.DefaultClock)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// TestSearchBasic is spec §8 scenario S5: a depth-1 search on a
// non-terminal position must return some legal move, a finite
// evaluation, completed=true, and a PV of length 1.
func TestSearchBasic(t *testing.T) {
	g := newTestGame(t)
	for _, line := range []string{
		"place r2 at r2c3",
		"place b3 at r1c2",
		"place r4 at r1c1",
	} {
		m, err := board.ParseMove(line, g)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if err := g.Apply(m); err != nil {
			t.Fatalf("apply %q: %v", line, err)
		}
	}

	eng := NewEngine(1)
	res := eng.SearchWithLimits(g, SearchLimits{Depth: 1})

	if res.Move.Kind == board.KindSubmit && board.LegalMoves(g).Len() > 1 {
		t.Errorf("search returned Submit while other moves were available")
	}
	if !res.Completed {
		t.Errorf("depth-1 search on a non-terminal position should complete")
	}
	if res.Score <= -Infinity || res.Score >= Infinity {
		t.Errorf("score %d is not finite", res.Score)
	}
	if len(res.PV) != 1 {
		t.Errorf("PV length = %d, want 1", len(res.PV))
	}
	if err := board.IsLegal(g, res.Move); err != nil {
		t.Errorf("returned move is not legal: %v", err)
	}
}

// TestSearchFindsImmediateTripleWin plays out S1/S2's winning line for
// player 2 and confirms a shallow search from one ply before the win
// reports a mate score in the mover's favor.
func TestSearchFindsImmediateTripleWin(t *testing.T) {
	g := newTestGame(t)
	lines := []string{
		"place r2 at r2c3",
		"place b3 at r1c2",
		"place r4 at r1c1",
		"move b3 from r1c2 to r2c3",
		"fight at r2c3",
		"place b1 at r2c2",
		"move r4 from r1c1 to r2c3",
		"place b3 at r1c2",
		"place r6 at r2c1",
		"place b5 at r1c3",
		"move r6 from r2c1 to r2c2",
	}
	for _, line := range lines {
		m, err := board.ParseMove(line, g)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if err := g.Apply(m); err != nil {
			t.Fatalf("apply %q: %v", line, err)
		}
	}
	if g.SideToMove() != board.Player2 {
		t.Fatalf("expected player 2 to move before the winning placement")
	}

	eng := NewEngine(1)
	res := eng.SearchWithLimits(g, SearchLimits{Depth: 2})
	if res.Score <= MateScore-MaxPly {
		t.Errorf("expected a near-mate score for the winning side, got %d", res.Score)
	}
	if err := board.IsLegal(g, res.Move); err != nil {
		t.Errorf("returned move is not legal: %v", err)
	}
}

// TestSearchRespectsDepthLimit checks that Depth bounds the iterative
// deepening loop even with no time budget.
func TestSearchRespectsDepthLimit(t *testing.T) {
	g := newTestGame(t)
	eng := NewEngine(1)
	res := eng.SearchWithLimits(g, SearchLimits{Depth: 2})
	if res.Depth > 2 {
		t.Errorf("depth %d exceeds requested limit 2", res.Depth)
	}
	if !res.Completed {
		t.Errorf("expected the requested depth to complete with no time budget")
	}
}

// TestSearchTimeBudgetAborts checks that an expired move-time budget
// stops iterative deepening before depth 2 starts, and that the search
// still returns a legal move from depth 1, which ran to completion.
func TestSearchTimeBudgetAborts(t *testing.T) {
	g := newTestGame(t)
	eng := NewEngine(1)
	var tick int64
	eng.Clock = func() int64 {
		tick++
		// Let depth 1 (a handful of node checks, all near tick 0) run
		// to completion, then expire the deadline before depth 2.
		if tick > 3 {
			return 1_000_000
		}
		return 0
	}
	res := eng.SearchWithLimits(g, SearchLimits{Depth: 64, MoveTime: 1 * time.Millisecond})
	if !res.Completed {
		t.Errorf("depth 1 should have completed before the deadline expired")
	}
	if err := board.IsLegal(g, res.Move); err != nil {
		t.Errorf("returned move from aborted search is not legal: %v", err)
	}
}

// TestEvaluateWeightsSubstitutable confirms the evaluator's weights are
// package variables a regression test can override, per spec §4.5.
func TestEvaluateWeightsSubstitutable(t *testing.T) {
	oldW3 := W3
	defer func() { W3 = oldW3 }()

	g := newTestGame(t)
	for _, line := range []string{
		"place r2 at r1c2", // r1c2 is a Gold card
		"place b1 at r2c1", // r2c1 is a Jade card
	} {
		m, err := board.ParseMove(line, g)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if err := g.Apply(m); err != nil {
			t.Fatalf("apply %q: %v", line, err)
		}
	}

	W3 = 0
	low := Evaluate(g)
	W3 = 100
	high := Evaluate(g)
	if high <= low {
		t.Errorf("raising the Gold-presence weight should raise the mover's score: low=%d high=%d", low, high)
	}
}

// TestTranspositionTableRoundTrip exercises Store/Probe directly.
func TestTranspositionTableRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	var mv board.Move
	tt.Store(12345, 4, 100, TTExact, mv)
	entry, ok := tt.Probe(12345)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if entry.Score != 100 || int(entry.Depth) != 4 {
		t.Errorf("got score=%d depth=%d, want 100/4", entry.Score, entry.Depth)
	}
	if _, ok := tt.Probe(99999); ok {
		t.Errorf("expected a miss for an unstored key")
	}
}
