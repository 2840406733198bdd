package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/gildedrose/internal/engine"
	"github.com/roach88/gildedrose/internal/testutil"
)

// Run executes a scenario on a fresh engine and evaluates its assertions.
//
// The returned error covers setup problems (unreadable catalog, engine
// failure); assertion failures are reported through Result.Pass and
// Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	items, err := scenario.Stock()
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}

	eng := engine.New(items,
		testutil.NewFixedRunID(scenario.RunID),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	result := NewResult()
	if err := eng.Run(ctx, scenario.Days, result.Record); err != nil {
		return nil, fmt.Errorf("failed to run scenario: %w", err)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}
