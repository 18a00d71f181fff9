package board

// Coord is a generic two-axis grid coordinate. For Bricks7 it holds axial
// hex coordinates (x=q, y=r); for Square6 it holds plain row/column offsets.
// Both layouts share the same type so the rest of the package never needs
// to branch on geometry.
type Coord struct {
	X, Y int
}

// direction is a unit step in a Layout's coordinate system.
type direction struct {
	DX, DY int
}

// hexDirections are the six axial unit vectors for a pointy-top hex grid.
var hexDirections = []direction{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// hexAxes are three of the six hexDirections, one per line-axis, used to
// enumerate collinear triples without generating each line twice.
var hexAxes = []direction{{1, 0}, {0, 1}, {1, -1}}

// squareDirections are the four orthogonal unit vectors for a rectangular
// grid.
var squareDirections = []direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var squareAxes = []direction{{1, 0}, {0, 1}}

func (c Coord) add(d direction) Coord {
	return Coord{c.X + d.DX, c.Y + d.DY}
}
