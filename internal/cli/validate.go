package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/catalog"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool                      `json:"valid"`
	Items    int                       `json:"items"`
	Findings []catalog.ValidationError `json:"findings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog file without aging it",
		Long: `Validate a YAML or CUE catalog.

Checks the file against the catalog schema, then checks every item:
names must be non-empty and non-legendary quality must lie in [0, 50].
Legendary items with an unusual quality produce a warning only.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := catalog.Load(path)
	if err != nil {
		var le *catalog.LoadError
		if errors.As(err, &le) {
			_ = formatter.Error(le.Code, le.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to load catalog", err)
		}
		_ = formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load catalog", err)
	}
	formatter.VerboseLog("Loaded %d item(s) from %s", len(c.Items), path)

	findings := catalog.Validate(c)
	if catalog.HasErrors(findings) {
		return outputValidationErrors(formatter, len(c.Items), findings)
	}

	return outputValidateSuccess(formatter, len(c.Items), findings)
}

// outputValidateSuccess reports a valid catalog, listing any warnings.
func outputValidateSuccess(formatter *OutputFormatter, items int, warnings []catalog.ValidationError) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Items: items, Findings: warnings})
	}

	for _, w := range warnings {
		fmt.Fprintf(formatter.Writer, "warning %s\n", w.Error())
	}
	fmt.Fprintf(formatter.Writer, "✓ Catalog valid (%d items)\n", items)
	return nil
}

// outputValidationErrors reports every finding and fails with ExitFailure.
func outputValidationErrors(formatter *OutputFormatter, items int, findings []catalog.ValidationError) error {
	errCount := 0
	var first *catalog.ValidationError
	for i := range findings {
		if findings[i].Severity == catalog.SeverityError {
			errCount++
			if first == nil {
				first = &findings[i]
			}
		}
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Items: items, Findings: findings},
			Error: &CLIError{
				Code:    first.Code,
				Message: first.Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", errCount))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, f := range findings {
		fmt.Fprintf(formatter.Writer, "  %s %s\n", f.Severity, f.Error())
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", errCount))
}
