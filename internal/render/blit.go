//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

// GridBlitter uploads painter output into a single texture and draws it
// scaled. The first frame paints every cell; afterwards only dirty cells
// touch the pixel buffer.
type GridBlitter struct {
	painter *Painter
	img     *ebiten.Image
	primed  bool
}

// NewGridBlitter allocates a blitter for a w by h cell view.
func NewGridBlitter(w, h int) *GridBlitter {
	gb := &GridBlitter{painter: NewPainter(w, h)}
	pw, ph := gb.painter.Size()
	gb.img = ebiten.NewImage(pw, ph)
	return gb
}

// Blit refreshes the texture from the driver's grid, repainting the listed
// changed cells (or everything on the first frame), and draws it onto dst.
// The caller owns the dirty set and clears it once every consumer has seen
// the same slice.
func (gb *GridBlitter) Blit(dst *ebiten.Image, d *core.Driver, dirty []int, scale int) {
	cells := d.Grid().Cells()
	if !gb.primed {
		gb.painter.FillAll(cells, d.Rule())
		gb.primed = true
	} else {
		gb.painter.FillDirty(cells, d.Rule(), dirty)
	}
	gb.img.WritePixels(gb.painter.Pixels())

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gb.img, op)
}

// Invalidate forces the next Blit to repaint every cell, needed after a
// rule change recolors states in place.
func (gb *GridBlitter) Invalidate() { gb.primed = false }

// Size returns the view dimensions in cells.
func (gb *GridBlitter) Size() (int, int) { return gb.painter.Size() }
