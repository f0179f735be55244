package life

import (
	"testing"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	d, err := core.New([]int{5, 5}, nil, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set := func(row, col int) { d.Paint(core.Position{row, col}, 1) }
	set(1, 2)
	set(2, 2)
	set(3, 2)

	check := func(phase string, expects map[[2]int]bool) {
		t.Helper()
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				got, err := d.Grid().AtPosition(core.Position{row, col})
				if err != nil {
					t.Fatalf("%s: AtPosition(%d,%d): %v", phase, row, col, err)
				}
				alive := got == 1
				_, shouldBeAlive := expects[[2]int{row, col}]
				if shouldBeAlive != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", phase, row, col, alive, shouldBeAlive)
				}
			}
		}
	}

	d.Step()
	check("after first step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	d.Step()
	check("after second step", map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

func TestBlockIsStill(t *testing.T) {
	d, err := core.New([]int{4, 4}, []core.State{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d.Step()
	if n := d.DirtyCount(); n != 0 {
		t.Fatalf("a block changed %d cells", n)
	}
}

func TestEdgeIsDeadNotWrapped(t *testing.T) {
	// A vertical blinker hugging the left edge collapses within two steps;
	// on a wrapped board it would keep oscillating.
	d, err := core.New([]int{5, 5}, nil, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.Paint(core.Position{1, 0}, 1)
	d.Paint(core.Position{2, 0}, 1)
	d.Paint(core.Position{3, 0}, 1)

	d.Step()
	d.Step()
	for i, s := range d.Grid().Cells() {
		if s != 0 {
			t.Fatalf("cell %d still alive, expected the edge pattern to die out", i)
		}
	}
}

func TestRegistered(t *testing.T) {
	if _, ok := core.NewRule("life"); !ok {
		t.Fatal("life not registered")
	}
}
