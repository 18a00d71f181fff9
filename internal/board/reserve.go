package board

// Reserve is a player's off-board dice, held as an ordered multiset.
// Order is preserved purely so that apply/undo can restore an exactly
// byte-identical slice (spec's apply/undo reversibility invariant);
// move generation treats it as an unordered multiset, de-duplicating by
// (Color, Value) identity before emitting Place moves.
type Reserve struct {
	dice []Die
}

func newReserve(dice []Die) *Reserve {
	r := &Reserve{dice: make([]Die, len(dice))}
	copy(r.dice, dice)
	return r
}

func (r *Reserve) clone() *Reserve {
	return newReserve(r.dice)
}

// Len returns the number of dice currently held.
func (r *Reserve) Len() int { return len(r.dice) }

// Dice returns the current dice in order. The returned slice must not be
// mutated by the caller.
func (r *Reserve) Dice() []Die { return r.dice }

// Distinct returns one representative Die per distinct (Color, Value)
// identity present, in first-seen order.
func (r *Reserve) Distinct() []Die {
	var out []Die
	seen := make(map[Die]bool, len(r.dice))
	for _, d := range r.dice {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// findFirst returns the index of the first die matching identity, or -1.
func (r *Reserve) findFirst(d Die) int {
	for i, x := range r.dice {
		if x == d {
			return i
		}
	}
	return -1
}

// removeAt removes and returns the die at index i, preserving order of
// the rest.
func (r *Reserve) removeAt(i int) Die {
	d := r.dice[i]
	r.dice = append(r.dice[:i:i], r.dice[i+1:]...)
	return d
}

// insertAt reinserts d at index i, used to undo a removal exactly.
func (r *Reserve) insertAt(i int, d Die) {
	r.dice = append(r.dice, Die{})
	copy(r.dice[i+1:], r.dice[i:])
	r.dice[i] = d
}

// add appends d to the end, returning its new index.
func (r *Reserve) add(d Die) int {
	r.dice = append(r.dice, d)
	return len(r.dice) - 1
}
