package board

// undoEntry carries enough state to invert one Apply call exactly,
// including the cached hash, mirroring the teacher's UndoInfo: rather
// than trying to derive the inverse operation from first principles,
// it snapshots whatever board cells the move touched and restores them
// wholesale.
type undoEntry struct {
	move       Move
	prevHash   uint64
	prevResult GameResult
	prevPlies  int
	prevSide   Player

	savedCoord [2]Coord
	savedCard  [2]Card
	savedCount int

	reserveOwner Player
	reserveIdx   int

	surpriseCard *Card
}

func (e *undoEntry) snapshot(b *Board, c Coord) {
	e.savedCoord[e.savedCount] = c
	e.savedCard[e.savedCount] = *b.cards[c]
	e.savedCount++
}

// Apply mutates g in place according to move m, per spec §4.4. It
// returns an InvalidMove error if m is not legal, a TerminalState error
// if g has already finished, and otherwise appends an undo record and
// advances the game (including terminal detection).
func (g *Game) Apply(m Move) error {
	if err := IsLegal(g, m); err != nil {
		return err
	}

	entry := &undoEntry{
		move:       m,
		prevHash:   g.hash,
		prevResult: g.result,
		prevPlies:  g.plies,
		prevSide:   g.side,
	}
	mover := g.side

	switch m.Kind {
	case KindPlace:
		entry.snapshot(g.board, m.To)
		card := g.board.cards[m.To]
		slotIdx := card.push(m.Die, mover)
		g.hash ^= zobristSlotKey(m.To, slotIdx, slot{m.Die, mover})
		idx := g.reserves[mover].findFirst(m.Die)
		g.reserves[mover].removeAt(idx)
		entry.reserveOwner = mover
		entry.reserveIdx = idx

	case KindMove:
		entry.snapshot(g.board, m.From)
		entry.snapshot(g.board, m.To)
		fromCard := g.board.cards[m.From]
		toCard := g.board.cards[m.To]
		die, owner, fromSlot := fromCard.pop()
		g.hash ^= zobristSlotKey(m.From, fromSlot, slot{die, owner})
		toSlot := toCard.push(die, owner)
		g.hash ^= zobristSlotKey(m.To, toSlot, slot{die, owner})

	case KindFight:
		entry.snapshot(g.board, m.To)
		card := g.board.cards[m.To]
		loserSlot := decideFightLoser(mover, card)
		loser := card.removeAt(loserSlot)
		g.hash ^= zobristSlotKey(m.To, loserSlot, loser)
		idx := g.reserves[loser.Owner].add(loser.Die)
		entry.reserveOwner = loser.Owner
		entry.reserveIdx = idx

	case KindSurprise:
		movingCard := g.board.cards[m.From]
		entry.surpriseCard = movingCard
		g.hash ^= zobristActiveKey(m.From)
		g.hash ^= zobristKindKey(m.From, movingCard.Kind)
		g.hash ^= zobristActiveKey(m.To)
		g.hash ^= zobristKindKey(m.To, movingCard.Kind)
		g.board.active[m.From] = false
		g.board.active[m.To] = true
		g.board.cards[m.To] = movingCard
		delete(g.board.cards, m.From)

	case KindSubmit:
		if mover == Player1 {
			g.result = Player2Won
		} else {
			g.result = Player1Won
		}
	}

	if m.Kind != KindSubmit {
		g.side = mover.Other()
		g.hash ^= zobristSideKey()
	}
	g.plies++
	g.checkTerminal()

	g.history = append(g.history, *entry)
	return nil
}

// Undo reverts the most recent Apply, restoring the Game to its exact
// prior state including the cached hash.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return nothingToUndo()
	}
	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	switch entry.move.Kind {
	case KindSurprise:
		g.board.cards[entry.move.From] = entry.surpriseCard
		delete(g.board.cards, entry.move.To)
		g.board.active[entry.move.From] = true
		g.board.active[entry.move.To] = false
	default:
		for i := 0; i < entry.savedCount; i++ {
			c := entry.savedCoord[i]
			saved := entry.savedCard[i]
			*g.board.cards[c] = saved
		}
	}

	if entry.move.Kind == KindPlace {
		g.reserves[entry.reserveOwner].insertAt(entry.reserveIdx, entry.move.Die)
	}
	if entry.move.Kind == KindFight {
		g.reserves[entry.reserveOwner].removeAt(entry.reserveIdx)
	}

	g.hash = entry.prevHash
	g.result = entry.prevResult
	g.plies = entry.prevPlies
	g.side = entry.prevSide
	return nil
}

// decideFightLoser returns the physical slot index of the losing die on
// a full card, given the player initiating the fight. See DESIGN.md for
// the tie-break rules, including the same-owner edge case not covered
// by spec prose.
func decideFightLoser(mover Player, card *Card) int {
	s0, _ := card.at(0)
	s1, _ := card.at(1)
	win, tie := s0.Die.beats(s1.Die)
	if !tie {
		if win {
			return 1
		}
		return 0
	}
	if s0.Owner != s1.Owner {
		if s0.Owner != mover {
			return 0
		}
		return 1
	}
	return card.topSlot
}
