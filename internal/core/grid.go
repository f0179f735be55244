package core

import "fmt"

// State is a single cell value. Rules choose their own encodings; the sand
// rule's solid wall is -1, so states carry a sign.
type State int8

// Grid stores an N-dimensional field of cell states in one flat slice,
// addressed through a Space.
type Grid struct {
	space *Space
	cells []State
}

// NewGrid allocates a grid over the given axis sizes, fastest-varying
// first, seeded from initial. A short initial pads with zeros; a long one
// is truncated.
func NewGrid(dims []int, initial []State) *Grid {
	space := NewSpace(dims...)
	cells := make([]State, space.Len())
	copy(cells, initial)
	return &Grid{space: space, cells: cells}
}

// Space returns the grid's index mapper.
func (g *Grid) Space() *Space { return g.space }

// Len returns the cell count.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the state at a flat index.
func (g *Grid) At(i int) (State, error) {
	if i < 0 || i >= len(g.cells) {
		return 0, fmt.Errorf("%w: index %d, cell count %d", ErrIndexOutOfBounds, i, len(g.cells))
	}
	return g.cells[i], nil
}

// AtPosition returns the state at an N-dimensional position.
func (g *Grid) AtPosition(p Position) (State, error) {
	i, err := g.space.IndexOf(p)
	if err != nil {
		return 0, err
	}
	return g.cells[i], nil
}

// ValidPosition reports whether p addresses a cell of this grid.
func (g *Grid) ValidPosition(p Position) bool { return g.space.Valid(p) }

// Cells exposes the backing slice so hot paths can read states directly.
// Writes belong to the driver.
func (g *Grid) Cells() []State { return g.cells }
