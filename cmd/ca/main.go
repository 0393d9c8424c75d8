//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"procgrid/internal/app"
	"procgrid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := log.New(os.Stderr, "[ca] ", log.LstdFlags)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	file, err := config.Load(cfg.ConfigPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	sim, err := app.NewSim(cfg.Sim, file)
	if err != nil {
		logger.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("procgrid: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
