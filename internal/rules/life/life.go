package life

import (
	"image/color"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

// Rule implements Conway's Game of Life on a Moore window. Unlike the
// classic toroidal board, cells beyond the edge read as dead.
type Rule struct {
	nh *core.Neighborhood
}

// New creates the rule with its own window buffer.
func New() *Rule {
	return &Rule{nh: core.NewNeighborhood(core.Moore, 0)}
}

// Name returns the registry identifier.
func (r *Rule) Name() string { return "life" }

// Neighborhood returns the window contract Apply expects.
func (r *Rule) Neighborhood() core.NeighborhoodType { return core.Moore }

// Apply plays B3/S23 for the cell at p.
func (r *Rule) Apply(g *core.Grid, p core.Position) core.State {
	win := r.nh.Neighbors(g, p)
	neighbors := 0
	for i, s := range win {
		if i == core.MooreSelf || s != 1 {
			continue
		}
		neighbors++
	}
	alive := win[core.MooreSelf] == 1
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}

// States lists the binary cell states.
func (r *Rule) States() []core.State { return []core.State{0, 1} }

// LabelFor names a state for display.
func (r *Rule) LabelFor(s core.State) string {
	if s != 0 {
		return "alive"
	}
	return "dead"
}

// ColorFor maps a state to its display color.
func (r *Rule) ColorFor(s core.State) color.RGBA {
	if s != 0 {
		return color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
	}
	return color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xff}
}

func init() {
	core.Register("life", func() core.Rule { return New() })
}
