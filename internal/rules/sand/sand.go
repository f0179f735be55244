package sand

import (
	"image/color"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

// Cell states. Rock is negative so a zeroed grid reads as open space.
const (
	Rock      core.State = -1
	Empty     core.State = 0
	Sand      core.State = 1
	Compacted core.State = 2
)

// Rule implements falling-sand physics on a Moore window. Everything
// outside the grid reads as rock, which makes the bottom row a solid floor
// and the sides solid walls.
type Rule struct {
	nh *core.Neighborhood
}

// New creates the rule with its own window buffer.
func New() *Rule {
	return &Rule{nh: core.NewNeighborhood(core.Moore, Rock)}
}

// Name returns the registry identifier.
func (r *Rule) Name() string { return "sand" }

// Neighborhood returns the window contract Apply expects.
func (r *Rule) Neighborhood() core.NeighborhoodType { return core.Moore }

// Apply decides the next state of the cell at p. The checks within each
// state are ordered and the first match wins.
func (r *Rule) Apply(g *core.Grid, p core.Position) core.State {
	win := r.nh.Neighbors(g, p)
	switch win[core.MooreSelf] {
	case Empty:
		return nextEmpty(win)
	case Sand:
		return nextSand(win)
	case Compacted:
		return nextCompacted(win)
	default:
		// Rock never changes.
		return win[core.MooreSelf]
	}
}

// nextEmpty receives grains: straight from above, tumbling in from the
// upper right along an occupied right column, or spilling off a compacted
// ledge on the left.
func nextEmpty(win []core.State) core.State {
	switch {
	case win[core.MooreUp] == Sand:
		return Sand
	case win[core.MooreUpRight] == Sand && win[core.MooreRight] != Empty && win[core.MooreUp] == Empty:
		return Sand
	case win[core.MooreLeft] == Compacted && win[core.MooreUpLeft] == Sand && win[core.MooreDownLeft] != Empty:
		return Sand
	default:
		return Empty
	}
}

// nextSand lets a grain fall, slide down-left, compact under load, or
// tumble off a compacted ledge to the right.
func nextSand(win []core.State) core.State {
	switch {
	case win[core.MooreDown] == Empty:
		return Empty
	case win[core.MooreDownLeft] == Empty && win[core.MooreLeft] == Empty:
		return Empty
	case win[core.MooreDown] != Empty && (win[core.MooreUp] == Sand || win[core.MooreUp] == Compacted):
		return Compacted
	case win[core.MooreDown] == Compacted && win[core.MooreRight] == Empty && win[core.MooreDownRight] == Empty:
		return Empty
	default:
		return Sand
	}
}

// nextCompacted releases back to loose sand when support or load
// disappears.
func nextCompacted(win []core.State) core.State {
	switch {
	case win[core.MooreDown] == Empty:
		return Sand
	case win[core.MooreDown] == Sand:
		return Sand
	case win[core.MooreUp] == Empty || win[core.MooreUp] == Rock:
		return Sand
	default:
		return Compacted
	}
}

// States lists the paintable states.
func (r *Rule) States() []core.State {
	return []core.State{Empty, Sand, Compacted, Rock}
}

// LabelFor names a state for display.
func (r *Rule) LabelFor(s core.State) string {
	switch s {
	case Rock:
		return "rock"
	case Sand:
		return "sand"
	case Compacted:
		return "compacted"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// ColorFor maps a state to its display color.
func (r *Rule) ColorFor(s core.State) color.RGBA {
	switch s {
	case Rock:
		return color.RGBA{R: 0x5c, G: 0x5f, B: 0x66, A: 0xff}
	case Sand:
		return color.RGBA{R: 0xe0, G: 0xb0, B: 0x5e, A: 0xff}
	case Compacted:
		return color.RGBA{R: 0xa8, G: 0x7c, B: 0x3a, A: 0xff}
	default:
		return color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xff}
	}
}

func init() {
	core.Register("sand", func() core.Rule { return New() })
}
