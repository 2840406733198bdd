package catalog

import (
	"fmt"
	"strings"

	"github.com/roach88/gildedrose/internal/inventory"
)

// Validation codes.
const (
	ErrNameEmpty         = "E201"
	ErrQualityOutOfRange = "E202"
	WarnLegendaryQuality = "W201"
)

// Severity of a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is one finding about a catalog entry.
type ValidationError struct {
	Index    int      `json:"index"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] items[%d].%s: %s", e.Code, e.Index, e.Field, e.Message)
}

// Validate checks the domain rules the update engine itself does not guard.
// Returns all findings (does not fail-fast); warnings do not make a catalog
// invalid, see HasErrors.
func Validate(c *Catalog) []ValidationError {
	var errs []ValidationError

	for i, it := range c.Items {
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, ValidationError{
				Index:    i,
				Field:    "name",
				Message:  "name is required and must be non-empty",
				Code:     ErrNameEmpty,
				Severity: SeverityError,
			})
		}

		if it.Category() == inventory.CategoryLegendary {
			if it.Quality != inventory.LegendaryQuality {
				errs = append(errs, ValidationError{
					Index:    i,
					Field:    "quality",
					Message:  fmt.Sprintf("legendary quality %d differs from %d and will be kept as is", it.Quality, inventory.LegendaryQuality),
					Code:     WarnLegendaryQuality,
					Severity: SeverityWarning,
				})
			}
			continue
		}

		if it.Quality < inventory.MinQuality || it.Quality > inventory.MaxQuality {
			errs = append(errs, ValidationError{
				Index:    i,
				Field:    "quality",
				Message:  fmt.Sprintf("quality %d outside [%d, %d]", it.Quality, inventory.MinQuality, inventory.MaxQuality),
				Code:     ErrQualityOutOfRange,
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// HasErrors reports whether any finding has error severity.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
