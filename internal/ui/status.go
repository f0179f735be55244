package ui

import "image/color"

// Status carries the per-frame values the HUD prints. The front-end fills it
// from the driver and its own input state before every draw.
type Status struct {
	Rule       string
	Generation uint64
	TPS        int
	Paused     bool
	Brush      string
	BrushColor color.RGBA
	Dirty      int
}
