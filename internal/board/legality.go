package board

// IsLegal checks move m against game g's current state, for use by both
// the interactive shell (validating user input) and the generator
// (sanity checks in debug/test builds). It returns a TerminalState
// GameError if g has already finished, nil if m is legal, or an
// InvalidMove GameError naming the specific reason otherwise.
func IsLegal(g *Game, m Move) error {
	if g.result != InProgress {
		return terminalState()
	}
	mover := g.side
	switch m.Kind {
	case KindPlace:
		if !g.board.InEnclosure(m.To) || !g.board.IsActive(m.To) {
			return invalidMove(OffBoard, "destination is not an active card")
		}
		card, _ := g.board.CardAt(m.To)
		if card.Full() {
			return invalidMove(OccupiedFull, "destination stack already holds 2 dice")
		}
		if g.reserves[mover].findFirst(m.Die) < 0 {
			return invalidMove(NotYourDie, "die not in mover's reserve")
		}
		return nil

	case KindMove:
		if !g.board.IsActive(m.From) {
			return invalidMove(OffBoard, "source is not an active card")
		}
		card, _ := g.board.CardAt(m.From)
		_, owner, ok := card.Top()
		if !ok {
			return invalidMove(EmptyStack, "source card is empty")
		}
		if owner != mover {
			return invalidMove(NotYourDie, "top die at source is not the mover's")
		}
		if !adjacent(g.board, m.From, m.To) {
			return invalidMove(NotAdjacent, "destination is not a neighbor of source")
		}
		if !g.board.IsActive(m.To) {
			return invalidMove(OffBoard, "destination is not an active card")
		}
		dest, _ := g.board.CardAt(m.To)
		if dest.Full() {
			return invalidMove(OccupiedFull, "destination stack already holds 2 dice")
		}
		return nil

	case KindFight:
		if !g.rules.EnableFight {
			return invalidMove(RuleDisabled, "fighting is disabled")
		}
		if !g.board.IsActive(m.To) {
			return invalidMove(OffBoard, "target is not an active card")
		}
		card, _ := g.board.CardAt(m.To)
		if !card.Full() {
			return invalidMove(EmptyStack, "target does not hold two dice")
		}
		if card.DiceOwnedBy(mover) == 0 {
			return invalidMove(NotYourDie, "neither die at target belongs to the mover")
		}
		return nil

	case KindSurprise:
		if !g.rules.EnableSurprise {
			return invalidMove(RuleDisabled, "surprise is disabled")
		}
		if !g.board.IsActive(m.From) {
			return invalidMove(OffBoard, "source is not an active card")
		}
		src, _ := g.board.CardAt(m.From)
		if !src.Empty() {
			return invalidMove(EmptyStack, "source card must be empty to relocate")
		}
		if !g.board.InEnclosure(m.To) {
			return invalidMove(OffBoard, "destination is outside the board's enclosure")
		}
		if g.board.IsActive(m.To) {
			return invalidMove(OccupiedFull, "destination already holds a card")
		}
		if !surpriseKeepsShape(g.board, m.From, m.To) {
			return invalidMove(NotAdjacent, "relocation would disconnect the board")
		}
		return nil

	case KindSubmit:
		return nil

	default:
		return invalidMove(NoReason, "unknown move kind")
	}
}

func adjacent(b *Board, a, c Coord) bool {
	for _, n := range b.Neighbors(a) {
		if n == c {
			return true
		}
	}
	return false
}

// surpriseKeepsShape reports whether relocating the card at from to the
// (currently unoccupied) coordinate to leaves the active set connected.
func surpriseKeepsShape(b *Board, from, to Coord) bool {
	active := make(map[Coord]bool, len(b.active))
	for c, v := range b.active {
		if v {
			active[c] = true
		}
	}
	delete(active, from)
	active[to] = true
	return b.geo.isConnected(active)
}
