//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Neben5/GenerativePlayground/internal/app"
	"github.com/Neben5/GenerativePlayground/internal/config"
	"github.com/Neben5/GenerativePlayground/internal/core"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/briansbrain"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/life"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/rule110"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/sand"
)

func main() {
	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		log.Fatal("grid must be at least 1x1")
	}

	factory, ok := core.Rules()[cfg.Rule]
	if !ok {
		log.Fatalf("unknown rule %q", cfg.Rule)
	}
	rule := factory()

	cells := make([]core.State, cfg.Width*cfg.Height)
	core.FillStates(core.NewRNG(cfg.Seed).Source(), cells, rule.States()[1:2], cfg.Density)

	driver, err := core.New(cfg.Dims(), cells, rule.Neighborhood(), rule)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	game := app.New(driver, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ca — " + rule.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
