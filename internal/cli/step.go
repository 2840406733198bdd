package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/inventory"
)

// StepResult is the JSON payload of the step command.
type StepResult struct {
	Source string     `json:"source"`
	Items  []ItemView `json:"items"`
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step [catalog]",
		Short: "Age a catalog by exactly one day",
		Long: `Load a catalog, apply one daily update to every item, and print the result.

Without a catalog argument the built-in opening stock is used.

Example:
  gildedrose step ./shop.yaml
  gildedrose step ./shop.cue --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runStep(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runStep(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	stock, err := loadStock(path)
	if err != nil {
		_ = formatter.Error("E_LOAD", err.Error(), nil)
		return err
	}
	formatter.VerboseLog("Loaded %d item(s) from %s", len(stock.Items), stock.Source)

	inventory.Update(stock.Items)
	slog.Debug("catalog aged one day", "source", stock.Source, "items", len(stock.Items))

	if opts.Format == "json" {
		return formatter.Success(StepResult{Source: stock.Source, Items: itemViews(stock.Items)})
	}

	w := cmd.OutOrStdout()
	for _, it := range stock.Items {
		fmt.Fprintln(w, it.String())
	}
	return nil
}
