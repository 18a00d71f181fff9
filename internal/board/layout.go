package board

import "fmt"

// Layout selects the board's geometry and card count.
type Layout uint8

const (
	// Bricks7 is the seven-card hex layout: a 3-card row over a 4-card row.
	Bricks7 Layout = iota
	// Square6 is the six-card rectangular layout: two rows of three.
	Square6
)

func (l Layout) String() string {
	if l == Square6 {
		return "square6"
	}
	return "bricks7"
}

var geometryCache = map[Layout]*geometry{}

// geometryFor returns the (cached) static geometry for a layout. Geometry
// is pure data derived from Layout alone, so every Game for the same
// layout shares one instance.
func geometryFor(l Layout) *geometry {
	if g, ok := geometryCache[l]; ok {
		return g
	}
	g := newGeometry(l)
	geometryCache[l] = g
	return g
}

// cellSpec is one card slot in a Layout's fixed geometry: its internal
// coordinate and its human-readable row/column label.
type cellSpec struct {
	Coord Coord
	Label string
	Kind  Kind
}

// geometry bundles everything static about a Layout: the active cells
// (in deterministic iteration order), the direction set used for
// adjacency and lines, and the label<->coordinate lookup tables.
type geometry struct {
	layout     Layout
	cells      []cellSpec
	directions []direction
	axes       []direction
	labelOf    map[Coord]string
	coordOf    map[string]Coord
	enclosure  []Coord          // cells plus one ring of dilation, fixed key domain
	neighbors  map[Coord][]Coord // precomputed over the enclosure
	triples    [][3]Coord        // precomputed over the enclosure
}

// Bricks7's seven axial coordinates. Row 1 (3 cards) sits at y=0; row 2
// (4 cards) sits at y=1. The specific offsets are chosen (see DESIGN.md)
// so that r1c2~r2c3, r1c1~r2c3 and r2c1~r2c2 all hold, matching the
// concrete scenarios that reference them.
func bricks7Cells() []cellSpec {
	return []cellSpec{
		{Coord{0, 0}, "r1c1", Jade},
		{Coord{1, 0}, "r1c2", Gold},
		{Coord{2, 0}, "r1c3", Jade},
		{Coord{-2, 1}, "r2c1", Jade},
		{Coord{-1, 1}, "r2c2", Gold},
		{Coord{0, 1}, "r2c3", Jade},
		{Coord{1, 1}, "r2c4", Gold},
	}
}

// Square6's six rectangular coordinates: two rows of three, 0-indexed.
func square6Cells() []cellSpec {
	return []cellSpec{
		{Coord{0, 0}, "r1c1", Jade},
		{Coord{1, 0}, "r1c2", Gold},
		{Coord{2, 0}, "r1c3", Jade},
		{Coord{0, 1}, "r2c1", Gold},
		{Coord{1, 1}, "r2c2", Jade},
		{Coord{2, 1}, "r2c3", Gold},
	}
}

func newGeometry(l Layout) *geometry {
	g := &geometry{layout: l}
	switch l {
	case Bricks7:
		g.cells = bricks7Cells()
		g.directions = hexDirections
		g.axes = hexAxes
	case Square6:
		g.cells = square6Cells()
		g.directions = squareDirections
		g.axes = squareAxes
	default:
		panic(fmt.Sprintf("board: unknown layout %d", l))
	}

	g.labelOf = make(map[Coord]string, len(g.cells))
	g.coordOf = make(map[string]Coord, len(g.cells))
	active := make(map[Coord]bool, len(g.cells))
	for _, c := range g.cells {
		g.labelOf[c.Coord] = c.Label
		g.coordOf[c.Label] = c.Coord
		active[c.Coord] = true
	}

	g.enclosure = dilate(active, g.directions)
	g.neighbors = make(map[Coord][]Coord, len(g.enclosure))
	encSet := make(map[Coord]bool, len(g.enclosure))
	for _, c := range g.enclosure {
		encSet[c] = true
	}
	for _, c := range g.enclosure {
		var ns []Coord
		for _, d := range g.directions {
			n := c.add(d)
			if encSet[n] {
				ns = append(ns, n)
			}
		}
		g.neighbors[c] = ns
	}

	encIndex := make(map[Coord]bool, len(g.enclosure))
	for _, c := range g.enclosure {
		encIndex[c] = true
	}
	for _, c := range g.enclosure {
		for _, d := range g.axes {
			b := c.add(d)
			cc := b.add(d)
			if encIndex[b] && encIndex[cc] {
				g.triples = append(g.triples, [3]Coord{c, b, cc})
			}
		}
	}
	return g
}

// dilate returns active's coordinates plus every coordinate adjacent to
// one of them, in a deterministic order (active cells first, then buffer
// cells, each group sorted by Y and then by X).
func dilate(active map[Coord]bool, dirs []direction) []Coord {
	seen := make(map[Coord]bool, len(active))
	var out []Coord
	for c := range active {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	// deterministic base ordering: sort by (Y,X) since map iteration order
	// above is not stable.
	out = sortCoords(out)

	var buffer []Coord
	base := append([]Coord(nil), out...)
	for _, c := range base {
		for _, d := range dirs {
			n := c.add(d)
			if !seen[n] {
				seen[n] = true
				buffer = append(buffer, n)
			}
		}
	}
	buffer = sortCoords(buffer)
	return append(out, buffer...)
}

func sortCoords(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// isConnected reports whether the active set forms one connected
// component under this geometry's adjacency.
func (g *geometry) isConnected(active map[Coord]bool) bool {
	if len(active) == 0 {
		return true
	}
	var start Coord
	for c := range active {
		start = c
		break
	}
	seen := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.neighbors[c] {
			if active[n] && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == len(active)
}
