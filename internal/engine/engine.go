package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/gildedrose/internal/inventory"
)

// Snapshot is the state of every item at the end of a day.
// Items is a copy; mutating it does not affect the engine.
type Snapshot struct {
	RunID string           `json:"run_id"`
	Day   int64            `json:"day"`
	Items []inventory.Item `json:"items"`
}

// Observer receives one snapshot per day, starting with day 0.
type Observer func(Snapshot) error

// Engine advances a stock list one simulated day at a time.
type Engine struct {
	items  []inventory.Item
	clock  *Clock
	runID  string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock resumes from an existing clock instead of day 0.
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine over a copy of items.
// The run ID is taken from gen once, at construction.
func New(items []inventory.Item, gen RunIDGenerator, opts ...Option) *Engine {
	owned := make([]inventory.Item, len(items))
	copy(owned, items)

	e := &Engine{
		items:  owned,
		clock:  NewClock(),
		runID:  gen.Generate(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunID returns the identifier of this run.
func (e *Engine) RunID() string {
	return e.runID
}

// Day returns the number of days simulated so far.
func (e *Engine) Day() int64 {
	return e.clock.Day()
}

// Snapshot returns the current state without advancing.
func (e *Engine) Snapshot() Snapshot {
	items := make([]inventory.Item, len(e.items))
	copy(items, e.items)
	return Snapshot{RunID: e.runID, Day: e.clock.Day(), Items: items}
}

// Step applies one update to every item and advances the clock.
func (e *Engine) Step() Snapshot {
	inventory.Update(e.items)
	day := e.clock.Advance()

	e.logger.Debug("day advanced",
		"run_id", e.runID,
		"day", day,
		"items", len(e.items),
	)

	return e.Snapshot()
}

// Run reports the current state, then steps days times, reporting after
// each step. It stops early if ctx is cancelled or observe fails.
func (e *Engine) Run(ctx context.Context, days int, observe Observer) error {
	if days < 0 {
		return newInvalidDaysError(e.runID, e.clock.Day(), days)
	}

	e.logger.Info("simulation starting",
		"run_id", e.runID,
		"start_day", e.clock.Day(),
		"days", days,
		"items", len(e.items),
	)

	if err := observe(e.Snapshot()); err != nil {
		return newObserverError(e.runID, e.clock.Day(), err)
	}

	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			e.logger.Info("simulation stopping: context cancelled",
				"run_id", e.runID,
				"day", e.clock.Day(),
			)
			return err
		}

		snap := e.Step()
		if err := observe(snap); err != nil {
			return newObserverError(e.runID, snap.Day, err)
		}
	}

	e.logger.Info("simulation finished", "run_id", e.runID, "day", e.clock.Day())
	return nil
}
