package driver

import (
	"context"
	"io"
	"log"
	"time"

	"procgrid/internal/core"
)

// DefaultInterval is used when a non-positive interval is supplied.
const DefaultInterval = 100 * time.Millisecond

// Driver advances a simulation on a fixed cadence. It owns the ticker; the
// simulation it drives holds no reference to it.
type Driver struct {
	interval time.Duration
	advance  func()
	redraw   func(generation int) error
	logger   *log.Logger
}

// New constructs a Driver. redraw may be nil; logger may be nil.
func New(interval time.Duration, advance func(), redraw func(generation int) error, logger *log.Logger) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Driver{interval: interval, advance: advance, redraw: redraw, logger: logger}
}

// ForSim drives sim.Step.
func ForSim(sim core.Sim, interval time.Duration, redraw func(generation int) error, logger *log.Logger) *Driver {
	return New(interval, sim.Step, redraw, logger)
}

// Interval returns the tick period.
func (d *Driver) Interval() time.Duration { return d.interval }

// Run ticks until ctx is cancelled, limit generations have run (limit <= 0
// means no limit), or redraw fails. It returns the number of generations
// advanced. Cancellation is reported as ctx.Err().
func (d *Driver) Run(ctx context.Context, limit int) (int, error) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	generations := 0
	for limit <= 0 || generations < limit {
		// Checked first so a pending tick never wins over cancellation.
		if err := ctx.Err(); err != nil {
			d.logger.Printf("stopped after %d generations: %v", generations, err)
			return generations, err
		}
		select {
		case <-ctx.Done():
			continue
		case <-ticker.C:
		}
		d.advance()
		generations++
		if d.redraw != nil {
			if err := d.redraw(generations); err != nil {
				d.logger.Printf("redraw failed at generation %d: %v", generations, err)
				return generations, err
			}
		}
	}
	d.logger.Printf("finished %d generations", generations)
	return generations, nil
}
