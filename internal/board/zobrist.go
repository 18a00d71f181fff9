package board

// Zobrist hashing follows the teacher's pattern: a fixed-seed xorshift64*
// PRNG fills flat key tables once at package init, and every mutation
// XORs the relevant keys in and out incrementally rather than rehashing
// from scratch.

type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// zobristSlots gives every (coordinate, slot index) pair its own 64-wide
// key table, indexed by a packed (color, value, owner) byte, which is
// simpler than chess's one-key-per-piece-type scheme since Rokumon has
// only three colors, six values and two owners per slot: 2 bits of
// color, 3 bits of (value-1), 1 bit of owner, 64 combinations total.
type zobristTables struct {
	slot     map[Coord][maxStack][64]uint64
	active   map[Coord]uint64
	kind     map[Coord][2]uint64
	sideFlag uint64
}

var zobrist *zobristTables

func packSlotKey(s slot) int {
	return (int(s.Die.Color)&0x3)<<4 | ((s.Die.Value-1)&0x7)<<1 | (int(s.Owner) & 0x1)
}

func buildZobrist(geometries []*geometry) *zobristTables {
	rng := newPRNG(0x524F4B554D4F4E31) // "ROKUMON1" ascii-ish fixed seed
	z := &zobristTables{
		slot:   make(map[Coord][maxStack][64]uint64),
		active: make(map[Coord]uint64),
		kind:   make(map[Coord][2]uint64),
	}
	seen := make(map[Coord]bool)
	for _, g := range geometries {
		for _, c := range g.enclosure {
			if seen[c] {
				continue
			}
			seen[c] = true
			var table [maxStack][64]uint64
			for slotIdx := 0; slotIdx < maxStack; slotIdx++ {
				for key := 0; key < 64; key++ {
					table[slotIdx][key] = rng.next()
				}
			}
			z.slot[c] = table
			z.active[c] = rng.next()
			z.kind[c] = [2]uint64{rng.next(), rng.next()}
		}
	}
	z.sideFlag = rng.next()
	return z
}

func init() {
	zobrist = buildZobrist([]*geometry{newGeometry(Bricks7), newGeometry(Square6)})
}

func zobristSlotKey(c Coord, slotIdx int, s slot) uint64 {
	return zobrist.slot[c][slotIdx][packSlotKey(s)]
}

func zobristActiveKey(c Coord) uint64 {
	return zobrist.active[c]
}

func zobristSideKey() uint64 {
	return zobrist.sideFlag
}

// zobristKindKey distinguishes a Jade card from a Gold card at the same
// coordinate, so that two positions reachable by different Surprise
// histories never collide merely because their dice happen to match.
func zobristKindKey(c Coord, k Kind) uint64 {
	return zobrist.kind[c][k]
}
