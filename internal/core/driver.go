package core

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Driver owns a grid and advances it one whole generation at a time. A
// step is two-phase: every next state is computed against the pre-step
// grid, then the buffers swap roles, so a rule mid-step never observes a
// partially updated generation.
type Driver struct {
	grid    *Grid
	next    []State
	rule    Rule
	kind    NeighborhoodType
	dirty   mapset.Set[int]
	scratch Position
	gen     uint64
}

// New builds a driver over a fresh grid seeded from initial. The rule must
// expect the given neighborhood type.
func New(dims []int, initial []State, kind NeighborhoodType, rule Rule) (*Driver, error) {
	if rule.Neighborhood() != kind {
		return nil, incompatible(rule, kind)
	}
	g := NewGrid(dims, initial)
	return &Driver{
		grid:    g,
		next:    make([]State, g.Len()),
		rule:    rule,
		kind:    kind,
		dirty:   mapset.New[int](),
		scratch: make(Position, g.Space().NDim()),
	}, nil
}

func incompatible(r Rule, kind NeighborhoodType) error {
	return fmt.Errorf("%w: %s expects %s, driver runs %s",
		ErrIncompatibleRule, r.Name(), r.Neighborhood(), kind)
}

// Grid returns the live grid.
func (d *Driver) Grid() *Grid { return d.grid }

// Rule returns the active rule.
func (d *Driver) Rule() Rule { return d.rule }

// Neighborhood returns the active neighborhood type.
func (d *Driver) Neighborhood() NeighborhoodType { return d.kind }

// Generation returns the number of completed steps.
func (d *Driver) Generation() uint64 { return d.gen }

// Step advances the grid one generation and records every changed cell in
// the dirty set. The two cell buffers trade roles instead of copying, so a
// step allocates nothing.
func (d *Driver) Step() {
	cells := d.grid.cells
	for i := range cells {
		d.grid.space.positionInto(i, d.scratch)
		d.next[i] = d.rule.Apply(d.grid, d.scratch)
	}
	for i, s := range d.next {
		if s != cells[i] {
			d.dirty.Put(i)
		}
	}
	d.grid.cells, d.next = d.next, d.grid.cells
	d.gen++
}

// Paint writes a state at a position. Positions outside the grid are
// ignored. The cell is marked dirty only when the stored value actually
// changes.
func (d *Driver) Paint(p Position, s State) {
	if !d.grid.space.Valid(p) {
		return
	}
	i := d.grid.space.index(p)
	if d.grid.cells[i] == s {
		return
	}
	d.grid.cells[i] = s
	d.dirty.Put(i)
}

// SetRule swaps the active rule. A rule built for a different neighborhood
// is rejected and the current rule stays active.
func (d *Driver) SetRule(r Rule) error {
	if r.Neighborhood() != d.kind {
		return incompatible(r, d.kind)
	}
	d.rule = r
	return nil
}

// SetNeighborhood switches the active window contract. It always succeeds;
// the caller pairs a matching rule with SetRule as its next move, and until
// then Step keeps evaluating the current rule.
func (d *Driver) SetNeighborhood(t NeighborhoodType) {
	d.kind = t
}

// DirtyIndices returns the indices of cells changed since the last clear,
// in ascending order. The set itself stays intact; entries keep
// accumulating across steps and paints until ClearDirty.
func (d *Driver) DirtyIndices() []int {
	out := make([]int, 0, d.dirty.Size())
	d.dirty.Each(func(i int) { out = append(out, i) })
	sort.Ints(out)
	return out
}

// DirtyCount returns the size of the dirty set without copying it.
func (d *Driver) DirtyCount() int { return d.dirty.Size() }

// ClearDirty empties the dirty set, typically right after a renderer
// consumed it.
func (d *Driver) ClearDirty() {
	d.dirty = mapset.New[int]()
}
