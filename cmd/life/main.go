package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"procgrid/internal/config"
	"procgrid/internal/driver"
	"procgrid/internal/export"
	"procgrid/internal/sims/life"
)

func main() {
	logger := log.New(os.Stderr, "[life] ", log.LstdFlags)

	configPath := flag.String("config", "", "optional YAML configuration file")
	size := flag.Int("size", 0, "grid side length (overrides config)")
	chance := flag.Float64("alive", 0, "initial alive probability (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	interval := flag.Duration("interval", 0, "time between generations (overrides config)")
	generations := flag.Int("n", 20, "generations to run (0 runs until interrupted)")
	out := flag.String("out", "", "also write every generation to this file (.zst compresses)")
	showParams := flag.Bool("params", false, "print the effective parameters to stderr")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	cfg := file.LifeConfig()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "alive":
			cfg.AliveChance = *chance
		case "seed":
			cfg.Seed = *seed
		case "interval":
			cfg.Interval = *interval
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	sim := life.New(cfg)
	sim.Reset(cfg.Seed)
	if *showParams {
		if _, err := sim.Parameters().WriteTo(os.Stderr); err != nil {
			logger.Fatal(err)
		}
	}

	var frames *export.FrameWriter
	if *out != "" {
		frames, err = export.Create(*out)
		if err != nil {
			logger.Fatalf("create %s: %v", *out, err)
		}
		defer func() {
			if err := frames.Close(); err != nil {
				logger.Printf("close %s: %v", *out, err)
			}
		}()
	}

	show := func(gen int) error {
		text := sim.Grid().String()
		fmt.Printf("generation %d (population %d)\n%s\n", gen, sim.Grid().Population(), text)
		if frames != nil {
			return frames.WriteFrame(text)
		}
		return nil
	}
	if err := show(0); err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	d := driver.ForSim(sim, cfg.Interval, show, logger)
	n, err := d.Run(ctx, *generations)
	if err != nil && ctx.Err() == nil {
		logger.Printf("run: %v", err)
	}
	logger.Printf("%d generations in %s", n, time.Since(start).Round(time.Millisecond))
}
