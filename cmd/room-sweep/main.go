package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"procgrid/internal/config"
	"procgrid/internal/core"
	"procgrid/internal/sims/dungeon"
	"procgrid/pkg/rng"
)

type scenario struct {
	seed  int64
	rooms int
	style dungeon.CorridorStyle
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d rooms=%d corridor=%s", s.seed, s.rooms, s.style)
}

type scenarioResult struct {
	scenario  scenario
	coverage  float64
	floor     int
	marker    int
	empty     int
	distinct  int
	violation string
}

func main() {
	logger := log.New(os.Stderr, "[room-sweep] ", log.LstdFlags)

	configPath := flag.String("config", "", "optional YAML configuration file")
	seeds := flag.Int("seeds", 200, "seeds per room count")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	base := file.DungeonConfig()
	if err := base.Validate(); err != nil {
		logger.Fatal(err)
	}

	roomOptions := []int{0, 1, base.Rooms / 2, base.Rooms, base.Rooms * 2}
	styleOptions := []dungeon.CorridorStyle{dungeon.CorridorSweep, dungeon.CorridorLShaped}

	var sets []scenario
	for _, rooms := range roomOptions {
		for _, style := range styleOptions {
			for s := 1; s <= *seeds; s++ {
				sets = append(sets, scenario{seed: int64(s), rooms: rooms, style: style})
			}
		}
	}

	logger.Printf("sweeping %d scenarios on %dx%d (%d workers)", len(sets), base.Width, base.Height, *workers)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	violations := 0
	for res := range results {
		all = append(all, res)
		if res.violation != "" {
			violations++
			logger.Printf("invariant violated (%s): %s", res.scenario, res.violation)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		return all[i].scenario.seed < all[j].scenario.seed
	})
	elapsed := time.Since(start)

	fmt.Printf("Top 5 coverage (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) coverage=%.3f floor=%d marker=%d emptyRooms=%d distinctAnchors=%d %s\n",
			i+1, res.coverage, res.floor, res.marker, res.empty, res.distinct, res.scenario)
	}
	if violations > 0 {
		logger.Fatalf("%d scenarios violated map invariants", violations)
	}
}

func runScenario(base dungeon.Config, sc scenario) scenarioResult {
	cfg := base
	cfg.Rooms = sc.rooms
	cfg.Corridor = sc.style
	res := scenarioResult{scenario: sc}

	b, err := dungeon.NewBuilder(cfg)
	if err != nil {
		res.violation = err.Error()
		return res
	}
	m, err := b.Build(rng.New(sc.seed))
	if err != nil {
		res.violation = err.Error()
		return res
	}
	again, err := b.Build(rng.New(sc.seed))
	if err != nil || !m.Equal(again) {
		res.violation = "same seed produced different maps"
		return res
	}
	if v := checkInvariants(m); v != "" {
		res.violation = v
		return res
	}

	res.floor = m.Count(dungeon.TileFloor)
	res.marker = m.Count(dungeon.TileMarker)
	for _, r := range m.Rooms() {
		if r.Empty() {
			res.empty++
		}
	}
	anchors := mapset.New[core.Position]()
	for _, a := range m.Anchors() {
		anchors.Put(a)
	}
	res.distinct = anchors.Size()

	interior := (m.Width() - 2) * (m.Height() - 2)
	if interior > 0 {
		res.coverage = float64(res.floor+res.marker) / float64(interior)
	}
	return res
}

func checkInvariants(m *dungeon.Map) string {
	total := m.Count(dungeon.TileWall) + m.Count(dungeon.TileFloor) + m.Count(dungeon.TileMarker)
	if total != m.Width()*m.Height() {
		return fmt.Sprintf("%d cells assigned, want %d", total, m.Width()*m.Height())
	}
	violation := ""
	m.Each(func(p core.Position, t dungeon.Tile) {
		if violation != "" {
			return
		}
		onRing := p.X == 0 || p.Y == 0 || p.X == m.Width()-1 || p.Y == m.Height()-1
		if onRing && t != dungeon.TileWall {
			violation = fmt.Sprintf("ring cell %v is %v", p, t)
		}
	})
	return violation
}
