//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

var hudKeys = [...][2]string{
	{"space", "pause"},
	{"enter", "run"},
	{"n", "step once"},
	{"r", "reseed"},
	{"s", "new seed"},
	{"t", "next rule"},
	{"1-9", "brush"},
	{"d", "changes"},
	{"q", "quit"},
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, st Status, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	header := color.RGBA{R: 200, G: 200, B: 210, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Simulation", face, panelPadding, y, header)
	y += lineHeight
	h.drawRow("rule", st.Rule, y)
	y += lineHeight
	h.drawRow("gen", strconv.FormatUint(st.Generation, 10), y)
	y += lineHeight
	h.drawRow("tps", strconv.Itoa(st.TPS), y)
	y += lineHeight
	state := "running"
	if st.Paused {
		state = "paused"
	}
	h.drawRow("state", state, y)
	y += lineHeight
	h.drawRow("brush", st.Brush, y)
	bounds := text.BoundString(face, st.Brush)
	sx := valueColumn + bounds.Dx() + swatchGap
	h.drawSwatch(image.Rect(sx, y-swatchSize+2, sx+swatchSize, y+2), st.BrushColor)
	y += lineHeight
	h.drawRow("dirty", strconv.Itoa(st.Dirty), y)

	y += sectionGap + lineHeight
	text.Draw(h.panel, "Keys", face, panelPadding, y, header)
	for _, k := range hudKeys {
		y += lineHeight
		h.drawRow(k[0], k[1], y)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(label, value string, y int) {
	face := basicfont.Face7x13
	text.Draw(h.panel, label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	text.Draw(h.panel, value, face, valueColumn, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func (h *HUD) drawSwatch(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	sectionGap     = 10
	valueColumn    = 72
	swatchSize     = 10
	swatchGap      = 8
)
