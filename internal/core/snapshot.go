package core

import "fmt"

// Snapshot is the portable record of a driver's full state. The JSON field
// names are part of the contract; a saved record must load back into an
// identical grid.
type Snapshot struct {
	NeighborhoodType string `json:"neighborhoodType"`
	RuleIdentifier   string `json:"ruleIdentifier"`
	Dimensions       []int  `json:"dimensions"`
	CellStates       []int  `json:"cellStates"`
}

// Snapshot captures the driver's current neighborhood, rule, dimensions
// and cells.
func (d *Driver) Snapshot() Snapshot {
	cells := d.grid.cells
	states := make([]int, len(cells))
	for i, s := range cells {
		states[i] = int(s)
	}
	return Snapshot{
		NeighborhoodType: string(d.kind),
		RuleIdentifier:   d.rule.Name(),
		Dimensions:       d.grid.space.Dims(),
		CellStates:       states,
	}
}

// Restore builds a driver from a snapshot, instantiating the rule by its
// registered name.
func Restore(snap Snapshot) (*Driver, error) {
	rule, ok := NewRule(snap.RuleIdentifier)
	if !ok {
		return nil, fmt.Errorf("restore: unknown rule %q", snap.RuleIdentifier)
	}
	initial := make([]State, len(snap.CellStates))
	for i, s := range snap.CellStates {
		initial[i] = State(s)
	}
	return New(snap.Dimensions, initial, NeighborhoodType(snap.NeighborhoodType), rule)
}
