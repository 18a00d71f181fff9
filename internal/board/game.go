package board

import "fmt"

// GameResult is the terminal status of a Game.
type GameResult uint8

const (
	InProgress GameResult = iota
	Player1Won
	Player2Won
	Draw
)

func (r GameResult) String() string {
	switch r {
	case Player1Won:
		return "Player1Won"
	case Player2Won:
		return "Player2Won"
	case Draw:
		return "Draw"
	default:
		return "InProgress"
	}
}

// maxPlies is the hard move-limit draw guard (spec §4.4).
const maxPlies = 200

// Options configures a new Game. Cards, if non-empty, must have one
// byte per layout cell ('g'/'j'); if empty, the layout's own default
// kind assignment is used. Seed is only consulted when Shuffle is true;
// if HasSeed is false a Clock-derived seed is used instead.
type Options struct {
	Layout         Layout
	Cards          string
	Shuffle        bool
	Seed           uint64
	HasSeed        bool
	EnableFight    bool
	EnableSurprise bool
	StartingPlayer Player
	Player1IsAI    bool
	Player2IsAI    bool
}

// DefaultOptions returns sensible defaults for the given layout: fight
// on, surprise off, player 1 to start, no shuffle.
func DefaultOptions(layout Layout) Options {
	return Options{
		Layout:         layout,
		EnableFight:    true,
		EnableSurprise: false,
		StartingPlayer: Player1,
	}
}

// Game holds a Board, both reserves, the side-to-move, move history,
// rules configuration and a cached Zobrist hash. It is mutated only
// through Apply and Undo.
type Game struct {
	board    *Board
	reserves [2]*Reserve
	side     Player
	rules    Options
	hash     uint64
	plies    int
	result   GameResult
	history  []undoEntry
}

// NewGame constructs a Game from (Layout, Deck, Options), per spec §4.7.
// The Deck is carried inside Options.Cards; clock supplies a time-
// derived shuffle seed when Shuffle is requested without an explicit
// Seed.
func NewGame(opts Options, clock Clock) (*Game, error) {
	geo := geometryFor(opts.Layout)

	cardsStr := opts.Cards
	if cardsStr == "" {
		cardsStr = defaultCardsString(geo)
	}
	kinds, err := parseCardsString(cardsStr, len(geo.cells))
	if err != nil {
		return nil, &GameError{Kind: InvalidMove, Detail: err.Error()}
	}
	if opts.Shuffle {
		seed := opts.Seed
		if !opts.HasSeed {
			if clock == nil {
				clock = DefaultClock
			}
			seed = uint64(clock())
		}
		shuffleKinds(kinds, seed)
	}

	b := newBoard(geo)
	for i, c := range geo.cells {
		b.cards[c.Coord].Kind = kinds[i]
	}

	p1, p2 := standardDice(opts.Layout)
	g := &Game{
		board:    b,
		reserves: [2]*Reserve{newReserve(p1), newReserve(p2)},
		side:     opts.StartingPlayer,
		rules:    opts,
	}
	g.hash = g.computeHash()
	return g, nil
}

// Board returns the current board. The returned value must not be
// mutated by the caller.
func (g *Game) Board() *Board { return g.board }

// SideToMove returns the player whose turn it is.
func (g *Game) SideToMove() Player { return g.side }

// Reserve returns player p's reserve.
func (g *Game) Reserve(p Player) *Reserve { return g.reserves[p] }

// Result returns the current terminal status.
func (g *Game) Result() GameResult { return g.result }

// Rules returns the Options this Game was constructed with.
func (g *Game) Rules() Options { return g.rules }

// Hash returns the cached Zobrist-style hash of the current position.
func (g *Game) Hash() uint64 { return g.hash }

// Plies returns the number of half-moves applied so far.
func (g *Game) Plies() int { return g.plies }

// History returns the moves applied so far, oldest first.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	for i, e := range g.history {
		out[i] = e.move
	}
	return out
}

// computeHash recomputes the Zobrist hash from scratch; used only at
// construction, never during play (apply/undo maintain it incrementally).
func (g *Game) computeHash() uint64 {
	var h uint64
	for _, c := range g.board.ActiveCells() {
		h ^= zobristActiveKey(c)
		card := g.board.cards[c]
		h ^= zobristKindKey(c, card.Kind)
		for i := 0; i < maxStack; i++ {
			if s, ok := card.at(i); ok {
				h ^= zobristSlotKey(c, i, s)
			}
		}
	}
	if g.side == Player2 {
		h ^= zobristSideKey()
	}
	return h
}

// Clone returns a deep copy of g, independent of the original — used by
// search so it never needs to touch the caller's Game directly... though
// in practice the search package operates via Apply/Undo on its own
// clone obtained once at the start of a search.
func (g *Game) Clone() *Game {
	ng := &Game{
		board:   g.board.clone(),
		side:    g.side,
		rules:   g.rules,
		hash:    g.hash,
		plies:   g.plies,
		result:  g.result,
		history: append([]undoEntry(nil), g.history...),
	}
	ng.reserves[0] = g.reserves[0].clone()
	ng.reserves[1] = g.reserves[1].clone()
	return ng
}

func (g *Game) String() string {
	return fmt.Sprintf("Game{layout=%s side=%s result=%s plies=%d}", g.rules.Layout, g.side, g.result, g.plies)
}
