package rule110

import (
	"image/color"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

// table holds the next state of Wolfram rule 110 for every three-cell
// pattern, indexed left*4 + center*2 + right.
var table = [8]core.State{0, 1, 1, 1, 0, 1, 1, 0}

// Rule applies Wolfram rule 110 along the fastest grid axis. Cells beyond
// the edges read as 0, so activity dies at the border instead of wrapping.
type Rule struct {
	nh *core.Neighborhood
}

// New creates the rule with its own window buffer.
func New() *Rule {
	return &Rule{nh: core.NewNeighborhood(core.Elementary, 0)}
}

// Name returns the registry identifier.
func (r *Rule) Name() string { return "rule110" }

// Neighborhood returns the window contract Apply expects.
func (r *Rule) Neighborhood() core.NeighborhoodType { return core.Elementary }

// Apply looks the three-cell pattern around p up in the rule table.
func (r *Rule) Apply(g *core.Grid, p core.Position) core.State {
	win := r.nh.Neighbors(g, p)
	pattern := 0
	if win[core.ElementaryLeft] != 0 {
		pattern |= 4
	}
	if win[core.ElementarySelf] != 0 {
		pattern |= 2
	}
	if win[core.ElementaryRight] != 0 {
		pattern |= 1
	}
	return table[pattern]
}

// States lists the binary cell states.
func (r *Rule) States() []core.State { return []core.State{0, 1} }

// LabelFor names a state for display.
func (r *Rule) LabelFor(s core.State) string {
	if s != 0 {
		return "on"
	}
	return "off"
}

// ColorFor maps a state to its display color.
func (r *Rule) ColorFor(s core.State) color.RGBA {
	if s != 0 {
		return color.RGBA{R: 0xf2, G: 0xb8, B: 0x3f, A: 0xff}
	}
	return color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xff}
}

func init() {
	core.Register("rule110", func() core.Rule { return New() })
}
