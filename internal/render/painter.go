package render

import (
	"github.com/Neben5/GenerativePlayground/internal/core"
)

// Painter converts cell states into RGBA pixels through a rule's palette.
// It keeps one reusable buffer, 4 bytes per cell in row-major order, and
// supports repainting just the cells a driver marked dirty.
type Painter struct {
	w, h int
	buf  []byte
}

// NewPainter allocates a painter for a w by h cell view.
func NewPainter(w, h int) *Painter {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the view dimensions in cells.
func (p *Painter) Size() (int, int) { return p.w, p.h }

// Pixels exposes the RGBA buffer.
func (p *Painter) Pixels() []byte { return p.buf }

// FillAll repaints every cell.
func (p *Painter) FillAll(cells []core.State, rule core.Rule) {
	n := len(cells)
	if total := p.w * p.h; n > total {
		n = total
	}
	for i := 0; i < n; i++ {
		p.setPixel(i, cells[i], rule)
	}
}

// FillDirty repaints only the listed cell indices. Indices outside the
// view are skipped.
func (p *Painter) FillDirty(cells []core.State, rule core.Rule, dirty []int) {
	total := p.w * p.h
	for _, i := range dirty {
		if i < 0 || i >= len(cells) || i >= total {
			continue
		}
		p.setPixel(i, cells[i], rule)
	}
}

func (p *Painter) setPixel(i int, s core.State, rule core.Rule) {
	col := rule.ColorFor(s)
	base := i * 4
	p.buf[base+0] = col.R
	p.buf[base+1] = col.G
	p.buf[base+2] = col.B
	p.buf[base+3] = col.A
}
