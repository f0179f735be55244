// Package term renders a cellular automaton driver in the terminal. One
// screen cell is one grid cell, colored through the rule's palette.
package term

import (
	"fmt"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/Neben5/GenerativePlayground/internal/config"
	"github.com/Neben5/GenerativePlayground/internal/core"
	"github.com/Neben5/GenerativePlayground/internal/store"
)

const noticeFor = 3 * time.Second

// UI owns the tcell screen and the driver it displays.
type UI struct {
	screen  tcell.Screen
	driver  *core.Driver
	presets *store.Store
	timer   *core.FixedStep

	seed    int64
	density float64
	brush   int
	paused  bool
	primed  bool

	styles   map[core.State]tcell.Style
	notice   string
	noticeAt time.Time
}

// New opens the terminal screen around a prepared driver.
func New(d *core.Driver, cfg config.Config) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to open terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[New] failed to init terminal screen")
	}
	return attach(screen, d, cfg), nil
}

// attach wires an already initialized screen. Tests hand in a simulation
// screen here.
func attach(screen tcell.Screen, d *core.Driver, cfg config.Config) *UI {
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	return &UI{
		screen:  screen,
		driver:  d,
		presets: store.New(cfg.PresetDir),
		timer:   core.NewFixedStep(cfg.TPS),
		seed:    cfg.Seed,
		density: cfg.Density,
		brush:   1,
	}
}

// Run owns the screen until the user quits, then restores the terminal.
func (u *UI) Run() error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !u.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !u.paused {
				for u.timer.ShouldStep() {
					u.driver.Step()
				}
			}
			u.draw()
		}
	}
}

func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
		u.primed = false
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() == tcell.KeyEnter {
		u.resume()
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		if u.paused {
			u.resume()
		} else {
			u.paused = true
		}
	case 'n':
		u.driver.Step()
		u.paused = true
	case 'r':
		u.reseed(u.seed)
	case 'e':
		u.reseed(time.Now().UnixNano())
	case 't':
		u.nextRule()
	case '+', '=':
		u.timer.SetTPS(u.timer.TPS() + 5)
	case '-':
		if tps := u.timer.TPS() - 5; tps > 0 {
			u.timer.SetTPS(tps)
		}
	case 's':
		u.savePreset()
	default:
		if r >= '1' && r <= '9' {
			u.setBrush(int(r - '1'))
		}
	}
	return true
}

// handleMouse paints with the primary button and erases with the secondary.
// Clicks outside the grid are dropped by the driver.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&tcell.Button1 == 0 && btn&tcell.Button3 == 0 {
		return
	}
	x, y := ev.Position()
	state := u.driver.Rule().States()[0]
	if btn&tcell.Button1 != 0 {
		state = u.brushState()
	}
	u.driver.Paint(core.Position{y, x}, state)
}

func (u *UI) resume() {
	if !u.paused {
		return
	}
	u.paused = false
	u.timer.Reset()
}

// reseed refills the grid from the given seed, keeping rule and neighborhood.
func (u *UI) reseed(seed int64) {
	u.seed = seed
	rule := u.driver.Rule()
	dims := u.driver.Grid().Space().Dims()
	cells := make([]core.State, u.driver.Grid().Len())
	core.FillStates(core.NewRNG(seed).Source(), cells, rule.States()[1:2], u.density)
	d, err := core.New(dims, cells, u.driver.Neighborhood(), rule)
	if err != nil {
		return
	}
	u.driver = d
	u.primed = false
}

// nextRule cycles to the next registered rule in name order, switching the
// neighborhood first when the driver rejects the rule as mismatched.
func (u *UI) nextRule() {
	names := make([]string, 0, len(core.Rules()))
	for name := range core.Rules() {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) < 2 {
		return
	}

	cur := u.driver.Rule().Name()
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
		if err := u.driver.SetRule(rule); err != nil {
			if !errors.Is(err, core.ErrIncompatibleRule) {
				continue
			}
			u.driver.SetNeighborhood(rule.Neighborhood())
			if err := u.driver.SetRule(rule); err != nil {
				continue
			}
		}
		u.brush = 1
		u.styles = nil
		u.primed = false
		u.say("rule " + name)
		return
	}
}

func (u *UI) savePreset() {
	name := fmt.Sprintf("%s-%d", u.driver.Rule().Name(), time.Now().Unix())
	if err := u.presets.Save(name, u.driver.Snapshot()); err != nil {
		u.say("save failed: " + err.Error())
		return
	}
	u.say("saved " + name)
}

func (u *UI) say(msg string) {
	u.notice = msg
	u.noticeAt = time.Now()
}

func (u *UI) setBrush(i int) {
	if i < len(u.driver.Rule().States()) {
		u.brush = i
	}
}

func (u *UI) brushState() core.State {
	states := u.driver.Rule().States()
	if u.brush >= len(states) {
		return states[len(states)-1]
	}
	return states[u.brush]
}

// draw repaints changed cells, or everything after a resize or rule switch,
// then refreshes the status line.
func (u *UI) draw() {
	dims := u.driver.Grid().Space().Dims()
	w, h := dims[0], 1
	if len(dims) > 1 {
		h = dims[1]
	}
	cells := u.driver.Grid().Cells()
	if u.styles == nil {
		u.buildStyles()
	}

	if !u.primed {
		for i, s := range cells {
			u.screen.SetContent(i%w, i/w, ' ', nil, u.styleFor(s))
		}
		u.primed = true
	} else {
		for _, i := range u.driver.DirtyIndices() {
			u.screen.SetContent(i%w, i/w, ' ', nil, u.styleFor(cells[i]))
		}
	}
	u.driver.ClearDirty()
	u.drawStatus(h)
	u.screen.Show()
}

func (u *UI) buildStyles() {
	rule := u.driver.Rule()
	states := rule.States()
	u.styles = make(map[core.State]tcell.Style, len(states))
	for _, s := range states {
		c := rule.ColorFor(s)
		u.styles[s] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
}

func (u *UI) styleFor(s core.State) tcell.Style {
	if st, ok := u.styles[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

func (u *UI) drawStatus(row int) {
	rule := u.driver.Rule()
	state := "running"
	if u.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s  gen %d  tps %d  brush %s  %s",
		rule.Name(), u.driver.Generation(), u.timer.TPS(), rule.LabelFor(u.brushState()), state)
	if u.notice != "" && time.Since(u.noticeAt) < noticeFor {
		line += "  | " + u.notice
	} else {
		line += "  | space pause  n step  r/e seed  t rule  +/- speed  s save  q quit"
	}

	width, _ := u.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(line)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		u.screen.SetContent(x, row, r, nil, style)
	}
}
