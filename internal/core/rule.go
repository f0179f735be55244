package core

import "image/color"

// Rule defines one cell-transition function over a resolved neighbor
// window. Implementations hold no simulation state of their own; an
// instance may own a resolver purely as a reusable window buffer, so the
// same rule value must never be shared across concurrently stepping
// drivers.
type Rule interface {
	// Name is the registry identifier, stable across saved snapshots.
	Name() string
	// Neighborhood names the window contract Apply expects.
	Neighborhood() NeighborhoodType
	// Apply computes the next state of the cell at p from the current
	// grid. It never writes the grid.
	Apply(g *Grid, p Position) State
	// States lists the paintable states. The first entry is the
	// background and the second the default brush.
	States() []State
	// LabelFor names a state for HUDs and logs.
	LabelFor(s State) string
	// ColorFor maps a state to its display color.
	ColorFor(s State) color.RGBA
}

// Factory constructs a fresh rule instance.
type Factory func() Rule

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name. Rule packages call
// it from init.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// Rules exposes the registry of available rule factories.
func Rules() map[string]Factory {
	return rules
}

// NewRule instantiates a registered rule, reporting false for unknown
// names.
func NewRule(name string) (Rule, bool) {
	f, ok := rules[name]
	if !ok {
		return nil, false
	}
	return f(), true
}
