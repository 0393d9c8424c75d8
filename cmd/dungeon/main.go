package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"procgrid/internal/config"
	"procgrid/internal/export"
	"procgrid/internal/sims/dungeon"
	"procgrid/pkg/rng"
)

func main() {
	logger := log.New(os.Stderr, "[dungeon] ", log.LstdFlags)

	configPath := flag.String("config", "", "optional YAML configuration file")
	width := flag.Int("w", 0, "map width (overrides config)")
	height := flag.Int("h", 0, "map height (overrides config)")
	rooms := flag.Int("rooms", 0, "number of rooms (overrides config)")
	roomSize := flag.Int("room-size", 0, "room side length (overrides config)")
	corridor := flag.String("corridor", "", "corridor style: sweep or lshaped (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	out := flag.String("out", "", "also write the map to this file (.zst compresses)")
	showParams := flag.Bool("params", false, "print the effective parameters to stderr")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	cfg := file.DungeonConfig()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Width = *width
		case "h":
			cfg.Height = *height
		case "rooms":
			cfg.Rooms = *rooms
		case "room-size":
			cfg.RoomSize = *roomSize
		case "corridor":
			cfg.Corridor = dungeon.CorridorStyle(*corridor)
		case "seed":
			cfg.Seed = *seed
		}
	})

	b, err := dungeon.NewBuilder(cfg)
	if err != nil {
		logger.Fatal(err)
	}
	if *showParams {
		sim := dungeon.New(b.Config())
		if _, err := sim.Parameters().WriteTo(os.Stderr); err != nil {
			logger.Fatal(err)
		}
	}

	m, err := b.Build(rng.New(cfg.Seed))
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Print(m.String())
	logger.Printf("%dx%d map: %d rooms placed, %d anchors, %d floor, %d marker, %d wall",
		m.Width(), m.Height(), len(m.Rooms()), len(m.Anchors()),
		m.Count(dungeon.TileFloor), m.Count(dungeon.TileMarker), m.Count(dungeon.TileWall))

	if *out == "" {
		return
	}
	fw, err := export.Create(*out)
	if err != nil {
		logger.Fatalf("create %s: %v", *out, err)
	}
	if err := fw.WriteFrame(m.String()); err != nil {
		fw.Close()
		logger.Fatalf("write %s: %v", *out, err)
	}
	if err := fw.Close(); err != nil {
		logger.Fatalf("close %s: %v", *out, err)
	}
	logger.Printf("wrote %s", *out)
}
