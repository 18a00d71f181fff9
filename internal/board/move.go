package board

import "fmt"

// MoveKind tags the five members of the Move sum type.
type MoveKind uint8

const (
	KindPlace MoveKind = iota
	KindMove
	KindFight
	KindSurprise
	KindSubmit
)

func (k MoveKind) String() string {
	switch k {
	case KindPlace:
		return "place"
	case KindMove:
		return "move"
	case KindFight:
		return "fight"
	case KindSurprise:
		return "surprise"
	case KindSubmit:
		return "submit"
	default:
		return "?"
	}
}

// Move is the tagged union of the five legal actions. Which fields are
// meaningful depends on Kind:
//   - KindPlace: Die, To
//   - KindMove, KindSurprise: From, To
//   - KindFight: To (the coordinate holding both dice)
//   - KindSubmit: none
//
// Place names its die by (color, value) identity rather than a reserve
// index; apply resolves that to the first identity-matching reserve
// slot, which is what spec's determinism rule requires anyway.
type Move struct {
	Kind MoveKind
	Die  Die
	From Coord
	To   Coord
}

// NewPlace builds a Place move for die d at destination to.
func NewPlace(d Die, to Coord) Move { return Move{Kind: KindPlace, Die: d, To: to} }

// NewMove builds a Move move relocating a die from one coordinate to an
// adjacent one.
func NewMove(from, to Coord) Move { return Move{Kind: KindMove, From: from, To: to} }

// NewFight builds a Fight move at the given coordinate.
func NewFight(at Coord) Move { return Move{Kind: KindFight, To: at} }

// NewSurprise builds a Surprise move relocating an empty card.
func NewSurprise(from, to Coord) Move { return Move{Kind: KindSurprise, From: from, To: to} }

// NewSubmit builds the concede move.
func NewSubmit() Move { return Move{Kind: KindSubmit} }

// String renders a Move using cube-triple coordinates. It never needs
// board context, unlike FormatMove, so for KindMove it cannot name the
// die being relocated (that die lives on the board, not in the Move
// value) and leaves the die out of the text. Callers that need the full,
// round-trippable textual grammar should use FormatMove.
func (m Move) String() string {
	switch m.Kind {
	case KindPlace:
		return fmt.Sprintf("place %s at %s", m.Die, coordLiteral(m.To))
	case KindMove:
		return fmt.Sprintf("move from %s to %s", coordLiteral(m.From), coordLiteral(m.To))
	case KindFight:
		return fmt.Sprintf("fight at %s", coordLiteral(m.To))
	case KindSurprise:
		return fmt.Sprintf("surprise from %s to %s", coordLiteral(m.From), coordLiteral(m.To))
	case KindSubmit:
		return "submit"
	default:
		return "?"
	}
}

// coordLiteral renders a coordinate as its cube triple, the one textual
// form that needs no board/layout context to print or parse.
func coordLiteral(c Coord) string {
	x, y, z := c.X, c.Y, -c.X-c.Y
	return fmt.Sprintf("<%d,%d,%d>", x, y, z)
}

// MoveList is a fixed-capacity, allocation-free collection of moves
// built up by the generator. Surprise, when enabled, can offer an empty
// card a relocation to any unoccupied cell in the board's enclosure, so
// an early Bricks7 position (several empty cards, a small reserve, a
// wide buffer ring) can offer well over a hundred candidates; the
// backing array is sized generously rather than trimmed to the common
// case.
type MoveList struct {
	moves [256]Move
	n     int
}

// Add appends a move to the list.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.n }

// Get returns the move at index i.
func (l *MoveList) Get(i int) Move { return l.moves[i] }

// Set overwrites the move at index i, used by move ordering.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Swap exchanges the moves at i and j, used by move ordering.
func (l *MoveList) Swap(i, j int) { l.moves[i], l.moves[j] = l.moves[j], l.moves[i] }

// Slice returns the moves currently held as a plain slice.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }
