//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints the cells that changed since the last frame so update
// activity stays visible while tuning a rule.
type Overlay struct {
	w, h    int
	enabled bool
	img     *ebiten.Image
	buf     []byte
}

// NewOverlay constructs an overlay for a w by h cell view.
func NewOverlay(w, h int) *Overlay {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	o := &Overlay{w: w, h: h}
	o.img = ebiten.NewImage(w, h)
	o.buf = make([]byte, 4*w*h)
	return o
}

// Update toggles the overlay on the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.enabled = !o.enabled
	}
}

// Draw highlights the listed cell indices on top of the scaled view.
func (o *Overlay) Draw(screen *ebiten.Image, dirty []int, scale int) {
	if !o.enabled || len(dirty) == 0 {
		return
	}
	total := o.w * o.h
	for i := range o.buf {
		o.buf[i] = 0
	}
	// Premultiplied translucent red.
	tint := color.RGBA{R: 120, G: 30, B: 30, A: 130}
	for _, idx := range dirty {
		if idx < 0 || idx >= total {
			continue
		}
		base := idx * 4
		o.buf[base+0] = tint.R
		o.buf[base+1] = tint.G
		o.buf[base+2] = tint.B
		o.buf[base+3] = tint.A
	}
	o.img.WritePixels(o.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
