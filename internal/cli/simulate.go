package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/engine"
)

// DefaultDays is how many days simulate runs when --days is not given.
const DefaultDays = 2

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Days int

	// RunIDs overrides the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// DayView is one day of a JSON simulation report.
type DayView struct {
	Day   int64      `json:"day"`
	Items []ItemView `json:"items"`
}

// SimulationResult is the JSON payload of the simulate command.
type SimulationResult struct {
	RunID  string    `json:"run_id"`
	Source string    `json:"source"`
	Days   []DayView `json:"days"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	return newSimulateCommand(&SimulateOptions{RootOptions: rootOpts})
}

func newSimulateCommand(opts *SimulateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [catalog]",
		Short: "Print the daily stock report for a number of days",
		Long: `Age a catalog day by day and print its state after every day.

Day 0 is the catalog as loaded. Each following day is exactly one update
step. Without a catalog argument the built-in opening stock is used.

Example:
  gildedrose simulate --days 30
  gildedrose simulate ./shop.yaml --days 5 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSimulate(opts, path, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", DefaultDays, "number of days to simulate")

	return cmd
}

func runSimulate(opts *SimulateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Days < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--days must be non-negative, got %d", opts.Days))
	}

	stock, err := loadStock(path)
	if err != nil {
		_ = formatter.Error("E_LOAD", err.Error(), nil)
		return err
	}

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = engine.UUIDv7Generator{}
	}
	eng := engine.New(stock.Items, runIDs)

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("simulating", "source", stock.Source, "days", opts.Days, "run_id", eng.RunID())

	if opts.Format == "json" {
		result := SimulationResult{RunID: eng.RunID(), Source: stock.Source}
		err := eng.Run(ctx, opts.Days, func(s engine.Snapshot) error {
			result.Days = append(result.Days, DayView{Day: s.Day, Items: itemViews(s.Items)})
			return nil
		})
		if err != nil {
			return simulateError(err)
		}
		return formatter.Success(result)
	}

	if err := eng.Run(ctx, opts.Days, engine.ReportObserver(cmd.OutOrStdout())); err != nil {
		return simulateError(err)
	}
	return nil
}

func simulateError(err error) error {
	if errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "simulation interrupted", err)
	}
	return WrapExitError(ExitFailure, "simulation failed", err)
}
