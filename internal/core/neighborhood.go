package core

// NeighborhoodType names a neighbor-window contract. The value doubles as
// the serialized form inside snapshots, so the strings are stable.
type NeighborhoodType string

const (
	// Elementary is the three-cell window along the fastest axis.
	Elementary NeighborhoodType = "elementary"
	// Moore is the 3x3 window over the two fastest axes.
	Moore NeighborhoodType = "moore"
)

// Slots of a resolved elementary window.
const (
	ElementaryLeft = iota
	ElementarySelf
	ElementaryRight
)

// Slots of a resolved Moore window. Up is the previous row, the one with
// the smaller slow-axis coordinate.
const (
	MooreUpLeft = iota
	MooreUp
	MooreUpRight
	MooreLeft
	MooreSelf
	MooreRight
	MooreDownLeft
	MooreDown
	MooreDownRight
)

// Size returns the window length for the type. Unknown types report the
// elementary length.
func (t NeighborhoodType) Size() int {
	if t == Moore {
		return 9
	}
	return 3
}

// Valid reports whether t names a known window contract.
func (t NeighborhoodType) Valid() bool {
	return t == Elementary || t == Moore
}

// Neighborhood resolves the cell window around a position. Neighbors that
// fall outside the grid resolve to a fixed boundary state chosen at
// construction; the edge is never clamped or wrapped. Each call reuses one
// internal buffer, so resolving invalidates the previous window.
type Neighborhood struct {
	kind     NeighborhoodType
	boundary State
	buf      []State
}

// NewNeighborhood builds a resolver. boundary is the state reported for
// every neighbor outside the grid; rules pick it to match their physics,
// open space for rule110 and solid wall for sand.
func NewNeighborhood(kind NeighborhoodType, boundary State) *Neighborhood {
	return &Neighborhood{kind: kind, boundary: boundary, buf: make([]State, kind.Size())}
}

// Type returns the window contract this resolver implements.
func (n *Neighborhood) Type() NeighborhoodType { return n.kind }

// Boundary returns the out-of-range substitute state.
func (n *Neighborhood) Boundary() State { return n.boundary }

// Neighbors resolves the window around p, which must address a cell of g.
// The result aliases the resolver's buffer; copy it to keep it across
// calls. The grid is never written.
func (n *Neighborhood) Neighbors(g *Grid, p Position) []State {
	if n.kind == Moore {
		return n.moore(g, p)
	}
	return n.elementary(g, p)
}

func (n *Neighborhood) elementary(g *Grid, p Position) []State {
	space := g.space
	col := p[len(p)-1]
	i := space.index(p)
	if col > 0 {
		n.buf[ElementaryLeft] = g.cells[i-1]
	} else {
		n.buf[ElementaryLeft] = n.boundary
	}
	n.buf[ElementarySelf] = g.cells[i]
	if col+1 < space.dims[0] {
		n.buf[ElementaryRight] = g.cells[i+1]
	} else {
		n.buf[ElementaryRight] = n.boundary
	}
	return n.buf
}

// moore walks rows slowest so the window reads up-left through down-right.
// On a 1-dimensional grid the row axis does not exist and every off-row
// slot resolves to the boundary.
func (n *Neighborhood) moore(g *Grid, p Position) []State {
	space := g.space
	col := p[len(p)-1]
	w := space.dims[0]
	i := space.index(p)

	rows := space.NDim() >= 2
	var row, h, rowStride int
	if rows {
		row = p[len(p)-2]
		h = space.dims[1]
		rowStride = space.strides[1]
	}

	k := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr != 0 && !rows {
				n.buf[k] = n.boundary
				k++
				continue
			}
			r := row + dr
			c := col + dc
			if c < 0 || c >= w || (rows && (r < 0 || r >= h)) {
				n.buf[k] = n.boundary
				k++
				continue
			}
			n.buf[k] = g.cells[i+dr*rowStride+dc]
			k++
		}
	}
	return n.buf
}
