package driver

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"procgrid/internal/sims/life"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRunStopsAtLimit(t *testing.T) {
	steps := 0
	var seen []int
	d := New(time.Millisecond, func() { steps++ }, func(gen int) error {
		seen = append(seen, gen)
		return nil
	}, quietLogger())

	n, err := d.Run(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || steps != 5 || len(seen) != 5 || seen[4] != 5 {
		t.Fatalf("n=%d steps=%d seen=%v", n, steps, seen)
	}
}

func TestRunCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	d := New(time.Millisecond, func() { steps++ }, func(gen int) error {
		if gen == 3 {
			cancel()
		}
		return nil
	}, quietLogger())

	n, err := d.Run(ctx, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n != 3 || steps != 3 {
		t.Fatalf("ran %d generations (%d steps), want 3", n, steps)
	}
}

func TestRunReturnsRedrawError(t *testing.T) {
	boom := errors.New("boom")
	d := New(time.Millisecond, func() {}, func(gen int) error {
		if gen == 2 {
			return boom
		}
		return nil
	}, nil)
	n, err := d.Run(context.Background(), 10)
	if !errors.Is(err, boom) || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestDefaultInterval(t *testing.T) {
	if d := New(0, func() {}, nil, nil); d.Interval() != DefaultInterval {
		t.Fatalf("interval = %v", d.Interval())
	}
}

func TestForSimAdvancesLife(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Size = 8
	sim := life.New(cfg)
	sim.Reset(0)
	want := life.Advance(life.Advance(sim.Grid()))

	d := ForSim(sim, time.Millisecond, nil, quietLogger())
	if _, err := d.Run(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 2 || !sim.Grid().Equal(want) {
		t.Fatal("driver did not advance the sim twice")
	}
}
