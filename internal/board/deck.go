package board

import (
	"fmt"
	"math/rand"
)

// parseCardsString validates a cards option string (one byte per cell,
// 'g' or 'j', case-insensitive) against a layout's cell count and
// returns the per-cell Kind assignment in layout order.
func parseCardsString(s string, cellCount int) ([]Kind, error) {
	if len(s) != cellCount {
		return nil, fmt.Errorf("board: cards string length %d, want %d", len(s), cellCount)
	}
	kinds := make([]Kind, cellCount)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g', 'G':
			kinds[i] = Gold
		case 'j', 'J':
			kinds[i] = Jade
		default:
			return nil, fmt.Errorf("board: cards string has invalid character %q at %d", s[i], i)
		}
	}
	return kinds, nil
}

func defaultCardsString(geo *geometry) string {
	buf := make([]byte, len(geo.cells))
	for i, c := range geo.cells {
		if c.Kind == Gold {
			buf[i] = 'g'
		} else {
			buf[i] = 'j'
		}
	}
	return string(buf)
}

// shuffleKinds permutes kinds in place using a seeded RNG, the same way
// the teacher's opening book draws a seeded *rand.Rand rather than the
// global source so results stay reproducible from a given seed.
func shuffleKinds(kinds []Kind, seed uint64) {
	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
}

// standardDice returns the fixed starting reserves for a layout. See
// SPEC_FULL.md §5.1 and DESIGN.md for why these are fixed data rather
// than an Options field.
func standardDice(l Layout) (p1, p2 []Die) {
	switch l {
	case Bricks7:
		return []Die{{Red, 2}, {Red, 2}, {Red, 4}, {Red, 6}},
			[]Die{{Black, 1}, {Black, 3}, {Black, 3}, {Black, 5}, {White, 1}}
	case Square6:
		return []Die{{Red, 1}, {Red, 3}, {Red, 5}},
			[]Die{{Black, 2}, {Black, 4}, {Black, 6}}
	default:
		return nil, nil
	}
}
