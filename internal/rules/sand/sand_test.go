package sand

import (
	"slices"
	"testing"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

func step(t *testing.T, dims []int, initial []core.State) *core.Driver {
	t.Helper()
	d, err := core.New(dims, initial, core.Moore, New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.Step()
	return d
}

func TestGrainFalls(t *testing.T) {
	d := step(t, []int{1, 2}, []core.State{Sand, Empty})
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Empty, Sand}) {
		t.Fatalf("after one step column = %v, expected grain at the bottom", got)
	}
	if dirty := d.DirtyIndices(); !slices.Equal(dirty, []int{0, 1}) {
		t.Fatalf("dirty = %v, expected both cells", dirty)
	}

	// Once landed the grain rests on the floor.
	d.ClearDirty()
	d.Step()
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Empty, Sand}) {
		t.Fatalf("settled grain moved: %v", got)
	}
	if n := d.DirtyCount(); n != 0 {
		t.Fatalf("settled step dirtied %d cells", n)
	}
}

func TestBottomRowIsSolidFloor(t *testing.T) {
	d := step(t, []int{1, 1}, []core.State{Sand})
	if got, _ := d.Grid().At(0); got != Sand {
		t.Fatalf("grain on the floor became %d", got)
	}
	if n := d.DirtyCount(); n != 0 {
		t.Fatalf("resting grain dirtied %d cells", n)
	}
}

func TestColumnCompactsUnderLoad(t *testing.T) {
	d := step(t, []int{1, 3}, []core.State{Sand, Sand, Sand})
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Sand, Compacted, Compacted}) {
		t.Fatalf("column = %v, expected buried cells to compact", got)
	}

	d.ClearDirty()
	d.Step()
	if n := d.DirtyCount(); n != 0 {
		t.Fatalf("compacted column kept changing, %d dirty cells", n)
	}
}

func TestGrainSlidesDownLeft(t *testing.T) {
	// A grain resting on rock with open space to its lower left slides off.
	d := step(t, []int{2, 2}, []core.State{Empty, Sand, Empty, Rock})
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Empty, Empty, Sand, Rock}) {
		t.Fatalf("cells = %v, expected the grain one cell down-left", got)
	}
}

func TestCompactedReleases(t *testing.T) {
	// Support gone below: compacted turns back into falling sand.
	d := step(t, []int{1, 2}, []core.State{Compacted, Empty})
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Sand, Empty}) {
		t.Fatalf("cells = %v, expected released sand on top", got)
	}
	d.Step()
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Empty, Sand}) {
		t.Fatalf("cells = %v, expected the released grain to fall", got)
	}

	// Load gone above: a buried compacted cell loosens too.
	d = step(t, []int{1, 2}, []core.State{Empty, Compacted})
	if got := d.Grid().Cells(); !slices.Equal(got, []core.State{Empty, Sand}) {
		t.Fatalf("cells = %v, expected uncovered compacted to loosen", got)
	}
}

func TestRockNeverChanges(t *testing.T) {
	d := step(t, []int{1, 1}, []core.State{Rock})
	if got, _ := d.Grid().At(0); got != Rock {
		t.Fatalf("rock became %d", got)
	}
	if n := d.DirtyCount(); n != 0 {
		t.Fatalf("rock dirtied %d cells", n)
	}
}

func TestRegistered(t *testing.T) {
	r, ok := core.NewRule("sand")
	if !ok {
		t.Fatal("sand not registered")
	}
	if r.Neighborhood() != core.Moore {
		t.Fatalf("sand neighborhood = %s", r.Neighborhood())
	}
}
