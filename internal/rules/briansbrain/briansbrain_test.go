package briansbrain

import (
	"slices"
	"testing"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

func TestFiringDecaysThroughDying(t *testing.T) {
	d, err := core.New([]int{3, 3}, []core.State{
		0, 0, 0,
		0, stateFiring, 0,
		0, 0, 0,
	}, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d.Step()
	if got, _ := d.Grid().AtPosition(core.Position{1, 1}); got != stateDying {
		t.Fatalf("after one step center = %d, expected dying", got)
	}

	d.Step()
	if got, _ := d.Grid().AtPosition(core.Position{1, 1}); got != stateReady {
		t.Fatalf("after two steps center = %d, expected ready", got)
	}
}

func TestReadyFiresOnExactlyTwo(t *testing.T) {
	// Two firing cells flank the middle column; only cells that see both
	// of them fire next, corners see one and stay ready.
	d, err := core.New([]int{3, 3}, []core.State{
		0, 0, 0,
		stateFiring, 0, stateFiring,
		0, 0, 0,
	}, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d.Step()
	want := []core.State{
		0, stateFiring, 0,
		stateDying, stateFiring, stateDying,
		0, stateFiring, 0,
	}
	if got := d.Grid().Cells(); !slices.Equal(got, want) {
		t.Fatalf("cells = %v, expected %v", got, want)
	}
}

func TestRegistered(t *testing.T) {
	r, ok := core.NewRule("briansbrain")
	if !ok {
		t.Fatal("briansbrain not registered")
	}
	if r.Neighborhood() != core.Moore {
		t.Fatalf("briansbrain neighborhood = %s", r.Neighborhood())
	}
}
