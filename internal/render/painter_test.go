package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

// checkerRule maps 0 to black and everything else to white.
type checkerRule struct{}

func (checkerRule) Name() string                               { return "checker" }
func (checkerRule) Neighborhood() core.NeighborhoodType        { return core.Elementary }
func (checkerRule) Apply(*core.Grid, core.Position) core.State { return 0 }
func (checkerRule) States() []core.State                       { return []core.State{0, 1} }
func (checkerRule) LabelFor(core.State) string                 { return "" }

func (checkerRule) ColorFor(s core.State) color.RGBA {
	if s != 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

func pixelAt(buf []byte, i int) []byte { return buf[i*4 : i*4+4] }

func TestFillAll(t *testing.T) {
	p := NewPainter(2, 2)
	p.FillAll([]core.State{0, 1, 1, 0}, checkerRule{})

	white := []byte{255, 255, 255, 255}
	black := []byte{0, 0, 0, 255}
	for i, want := range [][]byte{black, white, white, black} {
		if got := pixelAt(p.Pixels(), i); !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}

func TestFillDirtyTouchesOnlyDirtyCells(t *testing.T) {
	p := NewPainter(2, 2)
	cells := []core.State{0, 1, 1, 0}
	p.FillAll(cells, checkerRule{})

	// The grid flips entirely, but only cell 2 is reported dirty.
	cells = []core.State{1, 0, 0, 1}
	p.FillDirty(cells, checkerRule{}, []int{2})

	white := []byte{255, 255, 255, 255}
	black := []byte{0, 0, 0, 255}
	for i, want := range [][]byte{black, white, black, black} {
		if got := pixelAt(p.Pixels(), i); !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}

func TestFillDirtySkipsOutOfRange(t *testing.T) {
	p := NewPainter(2, 1)
	p.FillDirty([]core.State{1, 1}, checkerRule{}, []int{-1, 0, 5})

	white := []byte{255, 255, 255, 255}
	if got := pixelAt(p.Pixels(), 0); !bytes.Equal(got, white) {
		t.Fatalf("pixel 0 = %v, expected %v", got, white)
	}
	if got := pixelAt(p.Pixels(), 1); !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Fatalf("pixel 1 = %v, expected untouched zeros", got)
	}
}

func TestNewPainterClampsSize(t *testing.T) {
	p := NewPainter(0, -3)
	w, h := p.Size()
	if w != 1 || h != 1 {
		t.Fatalf("clamped size = %dx%d, expected 1x1", w, h)
	}
	if len(p.Pixels()) != 4 {
		t.Fatalf("buffer length = %d, expected 4", len(p.Pixels()))
	}
}
