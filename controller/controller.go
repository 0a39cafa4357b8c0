// Package controller drives a grid the way the playback controls of a host UI do:
// start and stop automatic stepping, single steps, cell toggles and speed changes.
// All grid access goes through the controller's lock so a ticking loop and an input
// loop can share one grid.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// ErrRunning is returned by Next while automatic stepping is on
var ErrRunning = errors.New("simulation is running")

// Controller owns a grid and the playback state around it
type Controller struct {
	mu         sync.Mutex
	grid       *model.Grid
	history    model.History
	stats      *utils.Stats
	running    bool
	generation int
	lastStep   time.Time

	interval    time.Duration
	minInterval time.Duration
	maxInterval time.Duration
	step        time.Duration
	intervalCh  chan time.Duration

	logger log.Interface

	// OnTick, when set, is called after every committed generation, outside the lock
	OnTick func()
}

// New returns a stopped controller for grid using the intervals from cfg
func New(grid *model.Grid, cfg utils.Config, logger log.Interface) *Controller {
	c := &Controller{
		grid:        grid,
		stats:       utils.NewStats(),
		minInterval: cfg.MinInterval(),
		maxInterval: cfg.MaxInterval(),
		step:        cfg.IntervalStep(),
		intervalCh:  make(chan time.Duration, 1),
		logger:      logger,
	}
	c.interval = c.clamp(cfg.Interval())
	return c
}

func (c *Controller) clamp(d time.Duration) time.Duration {
	return min(max(d, c.minInterval), c.maxInterval)
}

// Start turns automatic stepping on. The first automatic step comes one full
// interval after Start.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.lastStep = time.Now()
	c.restartTicker(c.interval)
	c.logger.WithFields(log.Fields{
		"generation": c.generation,
		"interval":   c.interval,
	}).Info("started")
	c.mu.Unlock()
}

// Stop turns automatic stepping off
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	c.logger.WithField("generation", c.generation).Info("stopped")
}

// StartStop flips between running and stopped, like the original Start/Stop button
func (c *Controller) StartStop() {
	if c.Running() {
		c.Stop()
		return
	}
	c.Start()
}

// Running reports whether automatic stepping is on
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Next advances a stopped simulation by exactly one generation
func (c *Controller) Next() error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return errors.Wrapf(ErrRunning, "[Next] stop the simulation at generation %d first", c.generation)
	}
	c.advance()
	c.mu.Unlock()

	c.notify()
	return nil
}

// Toggle flips a single cell
func (c *Controller) Toggle(row, col int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.grid.Toggle(row, col); err != nil {
		return err
	}
	c.history.Reset()
	c.logger.WithFields(log.Fields{"row": row, "col": col}).Debug("toggled")
	return nil
}

// Clear kills every cell and restarts the generation count
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
	c.reset()
	c.logger.Info("cleared")
}

// Replace swaps in a freshly seeded generation produced by fill
func (c *Controller) Replace(fill func(g *model.Grid) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
	if err := fill(c.grid); err != nil {
		return errors.Wrap(err, "[Replace] failed to fill grid")
	}
	c.reset()
	c.logger.WithField("population", c.grid.CountLivingCells()).Info("reseeded")
	return nil
}

func (c *Controller) reset() {
	c.generation = 0
	c.history.Reset()
	c.stats.Reset()
	c.lastStep = time.Now()
}

// advance steps the grid once; c.mu must be held
func (c *Controller) advance() {
	c.history.Record(c.grid)
	c.grid.Step()
	c.generation++

	now := time.Now()
	c.stats.Update(c.generation, c.grid.CountLivingCells(), now.Sub(c.lastStep))
	c.lastStep = now

	c.logger.WithFields(log.Fields{
		"generation": c.generation,
		"population": c.stats.Population,
	}).Debug("step")
}

func (c *Controller) notify() {
	if c.OnTick != nil {
		c.OnTick()
	}
}

// SetInterval changes the delay between automatic steps, clamped to the configured
// range, and returns the interval actually applied
func (c *Controller) SetInterval(d time.Duration) time.Duration {
	c.mu.Lock()
	c.interval = c.clamp(d)
	d = c.interval
	c.restartTicker(d)
	c.mu.Unlock()

	c.logger.WithField("interval", d).Debug("interval changed")
	return d
}

// restartTicker hands d to the run loop, which resets its ticker so the next
// step is a full interval away. Only the latest pending interval is kept.
// c.mu must be held so a tick already in flight sees the restart.
func (c *Controller) restartTicker(d time.Duration) {
	for {
		select {
		case c.intervalCh <- d:
			return
		default:
			select {
			case <-c.intervalCh:
			default:
			}
		}
	}
}

// Faster shortens the interval by one step
func (c *Controller) Faster() time.Duration {
	return c.SetInterval(c.Interval() - c.step)
}

// Slower lengthens the interval by one step
func (c *Controller) Slower() time.Duration {
	return c.SetInterval(c.Interval() + c.step)
}

// Interval returns the delay between automatic steps
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Generation returns how many generations have been computed since the last reset
func (c *Controller) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Status classifies the current generation
func (c *Controller) Status() model.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Status(c.grid)
}

// Stats returns a copy of the performance counters
func (c *Controller) Stats() utils.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.stats
}

// View calls fn with the grid while holding the lock; fn must not retain g
func (c *Controller) View(fn func(g *model.Grid)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.grid)
}

// Run steps the grid every interval while the controller is running.
// It returns nil once ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-c.intervalCh:
			ticker.Reset(d)
		case <-ticker.C:
			c.tick(ticker)
		}
	}
}

func (c *Controller) tick(ticker *time.Ticker) {
	c.mu.Lock()
	select {
	case d := <-c.intervalCh:
		// restarted since this tick was scheduled
		ticker.Reset(d)
		c.mu.Unlock()
		return
	default:
	}
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.advance()
	c.mu.Unlock()

	c.notify()
}
