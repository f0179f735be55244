//go:build ebiten

package app

import (
	"errors"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Neben5/GenerativePlayground/internal/config"
	"github.com/Neben5/GenerativePlayground/internal/core"
	"github.com/Neben5/GenerativePlayground/internal/render"
	"github.com/Neben5/GenerativePlayground/internal/ui"
)

const hudWidth = 168

// Game adapts a cellular automaton driver to the ebiten.Game interface.
type Game struct {
	driver  *core.Driver
	blitter *render.GridBlitter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale   int
	seed    int64
	density float64
	tps     int

	paused   bool
	tickOnce bool
	brush    int
}

// New constructs a Game around a prepared driver.
func New(d *core.Driver, cfg config.Config) *Game {
	w, h := viewSize(d)
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Game{
		driver:  d,
		blitter: render.NewGridBlitter(w, h),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(w, h),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		density: cfg.Density,
		tps:     cfg.TPS,
		brush:   1,
	}
}

// Reset refills the grid from the provided seed, keeping the current rule
// and neighborhood.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	rule := g.driver.Rule()
	dims := g.driver.Grid().Space().Dims()
	cells := make([]core.State, g.driver.Grid().Len())
	core.FillStates(core.NewRNG(seed).Source(), cells, rule.States()[1:2], g.density)
	d, err := core.New(dims, cells, g.driver.Neighborhood(), rule)
	if err != nil {
		return
	}
	g.driver = d
	g.blitter.Invalidate()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.nextRule()
	}
	g.pickBrush()

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.paintUnderCursor()

	if (!g.paused) || g.tickOnce {
		g.driver.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid, the change overlay, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	dirty := g.driver.DirtyIndices()
	g.blitter.Blit(screen, g.driver, dirty, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, dirty, g.scale)
	}
	g.driver.ClearDirty()

	rule := g.driver.Rule()
	brush := g.brushState()
	w, h := g.blitter.Size()
	g.hud.Draw(screen, ui.Status{
		Rule:       rule.Name(),
		Generation: g.driver.Generation(),
		TPS:        g.tps,
		Paused:     g.paused,
		Brush:      rule.LabelFor(brush),
		BrushColor: rule.ColorFor(brush),
		Dirty:      len(dirty),
	}, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.blitter.Size()
	return w*g.scale + hudWidth, h * g.scale
}

// nextRule cycles to the next registered rule in name order. A rule built
// for the other neighborhood is installed by switching the neighborhood
// first, since the driver rejects a mismatched rule outright.
func (g *Game) nextRule() {
	names := make([]string, 0, len(core.Rules()))
	for name := range core.Rules() {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) < 2 {
		return
	}

	cur := g.driver.Rule().Name()
	start := 0
	for i, name := range names {
		if name == cur {
			start = i
			break
		}
	}
	for off := 1; off <= len(names); off++ {
		name := names[(start+off)%len(names)]
		if name == cur {
			continue
		}
		rule := core.Rules()[name]()
		if err := g.driver.SetRule(rule); err != nil {
			if !errors.Is(err, core.ErrIncompatibleRule) {
				continue
			}
			g.driver.SetNeighborhood(rule.Neighborhood())
			if err := g.driver.SetRule(rule); err != nil {
				continue
			}
		}
		g.brush = 1
		g.blitter.Invalidate()
		return
	}
}

var brushKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) pickBrush() {
	states := g.driver.Rule().States()
	for i, key := range brushKeys {
		if i >= len(states) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			g.brush = i
		}
	}
}

func (g *Game) brushState() core.State {
	states := g.driver.Rule().States()
	idx := g.brush
	if idx >= len(states) {
		idx = len(states) - 1
	}
	return states[idx]
}

// paintUnderCursor writes the brush state with the left button and the
// background state with the right. Positions outside the grid are dropped
// by the driver.
func (g *Game) paintUnderCursor() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	state := g.driver.Rule().States()[0]
	if left {
		state = g.brushState()
	}
	g.driver.Paint(core.Position{my / g.scale, mx / g.scale}, state)
}

func viewSize(d *core.Driver) (int, int) {
	dims := d.Grid().Space().Dims()
	w, h := dims[0], 1
	if len(dims) > 1 {
		h = dims[1]
	}
	return w, h
}
