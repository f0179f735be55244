package core

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	Register("shift", func() Rule { return newShiftRule() })

	d, err := New([]int{4, 3}, []State{1, 0, 1}, Elementary, newShiftRule())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.Step()
	d.Paint(Position{2, 2}, 1)

	before := append([]State(nil), d.Grid().Cells()...)
	snap := d.Snapshot()

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !slices.Equal(restored.Grid().Cells(), before) {
		t.Fatalf("restored cells = %v, expected %v", restored.Grid().Cells(), before)
	}
	if !slices.Equal(restored.Grid().Space().Dims(), []int{4, 3}) {
		t.Fatalf("restored dims = %v, expected [4 3]", restored.Grid().Space().Dims())
	}
	if restored.Neighborhood() != Elementary {
		t.Fatalf("restored neighborhood = %s", restored.Neighborhood())
	}
	if restored.Rule().Name() != "shift" {
		t.Fatalf("restored rule = %q", restored.Rule().Name())
	}

	// Both drivers must evolve identically from here.
	d.Step()
	restored.Step()
	if !slices.Equal(restored.Grid().Cells(), d.Grid().Cells()) {
		t.Fatal("restored driver diverged after one step")
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	d, err := New([]int{2}, []State{1, 0}, Elementary, newShiftRule())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := json.Marshal(d.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// The record travels between processes, so the field names are fixed.
	for _, key := range []string{`"neighborhoodType"`, `"ruleIdentifier"`, `"dimensions"`, `"cellStates"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("encoded snapshot %s is missing %s", raw, key)
		}
	}
}

func TestRestoreUnknownRule(t *testing.T) {
	_, err := Restore(Snapshot{
		NeighborhoodType: string(Elementary),
		RuleIdentifier:   "no-such-rule",
		Dimensions:       []int{2},
		CellStates:       []int{0, 0},
	})
	if err == nil || !strings.Contains(err.Error(), "no-such-rule") {
		t.Fatalf("expected unknown-rule error naming the rule, got %v", err)
	}
}
