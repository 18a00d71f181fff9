package board

// LegalMoves enumerates every move available to the side to move, in
// the fixed category order from spec §4.3: Place, Move, Fight, Surprise,
// Submit. Within each category, moves are generated in the board's
// deterministic coordinate order, which keeps search reproducible
// without needing to sort afterward. A finished game has no moves at
// all, Submit included.
func LegalMoves(g *Game) *MoveList {
	var list MoveList
	if g.result != InProgress {
		return &list
	}
	mover := g.side

	for _, d := range g.reserves[mover].Distinct() {
		for _, c := range g.board.ActiveCells() {
			card, _ := g.board.CardAt(c)
			if !card.Full() {
				list.Add(NewPlace(d, c))
			}
		}
	}

	for _, from := range g.board.ActiveCells() {
		card, _ := g.board.CardAt(from)
		_, owner, ok := card.Top()
		if !ok || owner != mover {
			continue
		}
		for _, to := range g.board.Neighbors(from) {
			if dest, ok := g.board.CardAt(to); ok && !dest.Full() {
				list.Add(NewMove(from, to))
			}
		}
	}

	if g.rules.EnableFight {
		for _, c := range g.board.ActiveCells() {
			card, _ := g.board.CardAt(c)
			if card.Full() && card.DiceOwnedBy(mover) > 0 {
				list.Add(NewFight(c))
			}
		}
	}

	if g.rules.EnableSurprise {
		for _, from := range g.board.ActiveCells() {
			card, _ := g.board.CardAt(from)
			if !card.Empty() {
				continue
			}
			for _, to := range g.board.geo.enclosure {
				if g.board.IsActive(to) {
					continue
				}
				if surpriseKeepsShape(g.board, from, to) {
					list.Add(NewSurprise(from, to))
				}
			}
		}
	}

	list.Add(NewSubmit())
	return &list
}
