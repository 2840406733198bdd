package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/catalog"
	"github.com/roach88/gildedrose/internal/inventory"
)

// Scenario describes a stock list, how many days to run it, and what must
// hold afterwards.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID fixes the run identifier. Defaults to testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Catalog is a path to a YAML or CUE catalog, relative to the scenario
	// file. Mutually exclusive with Items.
	Catalog string `yaml:"catalog,omitempty"`

	// Items is an inline stock list.
	Items []ItemSpec `yaml:"items,omitempty"`

	// Days is the number of single-day steps to run.
	Days int `yaml:"days"`

	// Assertions validate the recorded days.
	Assertions []Assertion `yaml:"assertions"`
}

// ItemSpec is one inline item.
type ItemSpec struct {
	Name    string `yaml:"name"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

// Assertion validates recorded days.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Index selects the item (used by item_state).
	Index int `yaml:"index,omitempty"`

	// Day selects the day (used by item_state). Nil means the last day.
	Day *int64 `yaml:"day,omitempty"`

	// Expect holds the expected values (used by item_state).
	Expect *ItemExpect `yaml:"expect,omitempty"`
}

// ItemExpect lists expected fields; nil fields are not checked.
type ItemExpect struct {
	SellIn  *int `yaml:"sell_in,omitempty"`
	Quality *int `yaml:"quality,omitempty"`
}

// Assertion type constants.
const (
	AssertItemState          = "item_state"
	AssertQualityBounds      = "quality_bounds"
	AssertLegendaryUnchanged = "legendary_unchanged"
	AssertSellInDecrements   = "sell_in_decrements"
)

// LoadScenario reads and parses a scenario YAML file.
// A relative catalog path is resolved against the scenario's directory.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty scenario file")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// Stock returns the scenario's starting items, loading the catalog if set.
func (s *Scenario) Stock() ([]inventory.Item, error) {
	if s.Catalog != "" {
		c, err := catalog.Load(s.Catalog)
		if err != nil {
			return nil, err
		}
		return c.Items, nil
	}

	items := make([]inventory.Item, len(s.Items))
	for i, spec := range s.Items {
		items[i] = inventory.NewItem(spec.Name, spec.SellIn, spec.Quality)
	}
	return items, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Days < 0 {
		return fmt.Errorf("days must be non-negative")
	}

	switch {
	case s.Catalog != "" && len(s.Items) > 0:
		return fmt.Errorf("catalog and items are mutually exclusive")
	case s.Catalog == "" && len(s.Items) == 0:
		return fmt.Errorf("one of catalog or items is required")
	}

	if s.Catalog != "" {
		if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog file not found: %s", s.Catalog)
		}
	}

	for i, item := range s.Items {
		if item.Name == "" {
			return fmt.Errorf("items[%d]: name is required", i)
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s.Days); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, days int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertItemState:
		if a.Index < 0 {
			return fmt.Errorf("assertions[%d]: index must be non-negative for item_state", index)
		}
		if a.Day != nil && (*a.Day < 0 || *a.Day > int64(days)) {
			return fmt.Errorf("assertions[%d]: day %d outside [0, %d]", index, *a.Day, days)
		}
		if a.Expect == nil || (a.Expect.SellIn == nil && a.Expect.Quality == nil) {
			return fmt.Errorf("assertions[%d]: expect with sell_in or quality is required for item_state", index)
		}
	case AssertQualityBounds, AssertLegendaryUnchanged, AssertSellInDecrements:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
