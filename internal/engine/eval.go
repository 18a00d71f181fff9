// Package engine implements the Rokumon search engine: a single-threaded
// iterative-deepening negamax over internal/board positions.
package engine

import (
	"github.com/rokumon/rokumon/internal/board"
)

// Evaluation weights, named after spec §4.5's four heuristic components.
// These are plain package variables rather than consts specifically so
// a regression test can substitute alternate values (spec: "test suite
// MUST allow substitution for regression").
var (
	W1 = 10 // triple progress
	W2 = 1  // reserve economy
	W3 = 3  // board presence on Gold cards
	W4 = 1  // mobility
)

// Evaluate scores g from the perspective of the side to move: positive
// favors the mover. Terminal positions are not scored here — the
// searcher checks g.Result() before calling Evaluate.
func Evaluate(g *board.Game) int {
	mover := g.SideToMove()
	opp := mover.Other()
	b := g.Board()

	score := 0
	score += W1 * tripleProgress(b, mover, opp)
	score += W2 * (g.Reserve(opp).Len() - g.Reserve(mover).Len())
	score += W3 * (diceOnGold(b, mover) - diceOnGold(b, opp))
	score += W4 * (mobilityApprox(b, mover) - mobilityApprox(b, opp))
	return score
}

// tripleProgress sums, over every collinear triple, the clipped (at 2 per
// side) count of mover's dice on the triple's cards minus opponent's.
func tripleProgress(b *board.Board, mover, opp board.Player) int {
	total := 0
	for _, t := range b.Triples() {
		mine, theirs := 0, 0
		for _, c := range t {
			card, ok := b.CardAt(c)
			if !ok {
				continue
			}
			mine += card.DiceOwnedBy(mover)
			theirs += card.DiceOwnedBy(opp)
		}
		if mine > 2 {
			mine = 2
		}
		if theirs > 2 {
			theirs = 2
		}
		total += mine - theirs
	}
	return total
}

// diceOnGold counts how many of p's dice currently sit on a Gold card.
func diceOnGold(b *board.Board, p board.Player) int {
	n := 0
	for _, c := range b.ActiveCells() {
		card, _ := b.CardAt(c)
		if card.Kind == board.Gold {
			n += card.DiceOwnedBy(p)
		}
	}
	return n
}

// mobilityApprox is the cheap per-coord-degree mobility stand-in spec
// §4.5 calls for: rather than fully regenerating legal moves for both
// sides at every node (expensive inside alpha-beta), it sums, over every
// card topped by one of p's dice, the number of neighboring cards that
// currently have room for another die.
func mobilityApprox(b *board.Board, p board.Player) int {
	total := 0
	for _, c := range b.ActiveCells() {
		card, _ := b.CardAt(c)
		if _, owner, ok := card.Top(); !ok || owner != p {
			continue
		}
		for _, n := range b.Neighbors(c) {
			if dest, ok := b.CardAt(n); ok && !dest.Full() {
				total++
			}
		}
	}
	return total
}
