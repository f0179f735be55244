package briansbrain

import (
	"image/color"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

const (
	stateReady  core.State = 0
	stateFiring core.State = 1
	stateDying  core.State = 2
)

// Rule implements Brian's Brain on a Moore window: firing cells always
// decay through a one-step dying state, and a ready cell fires when
// exactly two neighbors fire. Cells beyond the edge read as ready.
type Rule struct {
	nh *core.Neighborhood
}

// New creates the rule with its own window buffer.
func New() *Rule {
	return &Rule{nh: core.NewNeighborhood(core.Moore, stateReady)}
}

// Name returns the registry identifier.
func (r *Rule) Name() string { return "briansbrain" }

// Neighborhood returns the window contract Apply expects.
func (r *Rule) Neighborhood() core.NeighborhoodType { return core.Moore }

// Apply advances the firing cycle for the cell at p.
func (r *Rule) Apply(g *core.Grid, p core.Position) core.State {
	win := r.nh.Neighbors(g, p)
	switch win[core.MooreSelf] {
	case stateFiring:
		return stateDying
	case stateDying:
		return stateReady
	default:
		firing := 0
		for i, s := range win {
			if i == core.MooreSelf {
				continue
			}
			if s == stateFiring {
				firing++
			}
		}
		if firing == 2 {
			return stateFiring
		}
		return stateReady
	}
}

// States lists the paintable states.
func (r *Rule) States() []core.State {
	return []core.State{stateReady, stateFiring, stateDying}
}

// LabelFor names a state for display.
func (r *Rule) LabelFor(s core.State) string {
	switch s {
	case stateFiring:
		return "firing"
	case stateDying:
		return "dying"
	default:
		return "ready"
	}
}

// ColorFor maps a state to its display color.
func (r *Rule) ColorFor(s core.State) color.RGBA {
	switch s {
	case stateFiring:
		return color.RGBA{R: 0xe8, G: 0xf0, B: 0xff, A: 0xff}
	case stateDying:
		return color.RGBA{R: 0x3c, G: 0x64, B: 0xb4, A: 0xff}
	default:
		return color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xff}
	}
}

func init() {
	core.Register("briansbrain", func() core.Rule { return New() })
}
