//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"glowlife/internal/app"
	"glowlife/internal/core"
	_ "glowlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}
	settings, err := cfg.Settings()
	if err != nil {
		log.Fatal(err)
	}

	runner := app.NewRunner(sim, settings, core.NewScheduler(cfg.FPS, cfg.StepInterval()), core.NewRNG(cfg.RandSeed))
	game := app.New(runner, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("glowlife — " + sim.Name())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
