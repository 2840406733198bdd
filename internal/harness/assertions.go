package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/gildedrose/internal/engine"
	"github.com/roach88/gildedrose/internal/inventory"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Day      int64
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s (day %d)\n", e.Type, e.Day)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions evaluates all assertions against the recorded days.
// Returns one message per failed assertion.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertItemState:
			err = assertItemState(result.Days, assertion)
		case AssertQualityBounds:
			err = assertQualityBounds(result.Days)
		case AssertLegendaryUnchanged:
			err = assertLegendaryUnchanged(result.Days)
		case AssertSellInDecrements:
			err = assertSellInDecrements(result.Days)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

func assertItemState(days []engine.Snapshot, a Assertion) error {
	if len(days) == 0 {
		return fmt.Errorf("item_state: no days recorded")
	}

	snap := days[len(days)-1]
	if a.Day != nil {
		if *a.Day < 0 || *a.Day >= int64(len(days)) {
			return fmt.Errorf("item_state: day %d not recorded", *a.Day)
		}
		snap = days[*a.Day]
	}

	if a.Index < 0 || a.Index >= len(snap.Items) {
		return &AssertionError{
			Type:     AssertItemState,
			Day:      snap.Day,
			Expected: fmt.Sprintf("item at index %d", a.Index),
			Actual:   fmt.Sprintf("%d items", len(snap.Items)),
		}
	}

	it := snap.Items[a.Index]
	if a.Expect == nil {
		return nil
	}

	var want, got []string
	if a.Expect.SellIn != nil && *a.Expect.SellIn != it.SellIn {
		want = append(want, fmt.Sprintf("sell_in=%d", *a.Expect.SellIn))
		got = append(got, fmt.Sprintf("sell_in=%d", it.SellIn))
	}
	if a.Expect.Quality != nil && *a.Expect.Quality != it.Quality {
		want = append(want, fmt.Sprintf("quality=%d", *a.Expect.Quality))
		got = append(got, fmt.Sprintf("quality=%d", it.Quality))
	}
	if len(want) == 0 {
		return nil
	}

	return &AssertionError{
		Type:     AssertItemState,
		Day:      snap.Day,
		Expected: fmt.Sprintf("items[%d] %s %s", a.Index, it.Name, strings.Join(want, " ")),
		Actual:   strings.Join(got, " "),
	}
}

func assertQualityBounds(days []engine.Snapshot) error {
	for _, snap := range days {
		for i, it := range snap.Items {
			if it.Category() == inventory.CategoryLegendary {
				continue
			}
			if it.Quality < inventory.MinQuality || it.Quality > inventory.MaxQuality {
				return &AssertionError{
					Type:     AssertQualityBounds,
					Day:      snap.Day,
					Expected: fmt.Sprintf("items[%d] quality within [%d, %d]", i, inventory.MinQuality, inventory.MaxQuality),
					Actual:   it.String(),
				}
			}
		}
	}
	return nil
}

func assertLegendaryUnchanged(days []engine.Snapshot) error {
	if len(days) == 0 {
		return nil
	}
	first := days[0]
	for _, snap := range days[1:] {
		for i, it := range snap.Items {
			if it.Category() != inventory.CategoryLegendary || i >= len(first.Items) {
				continue
			}
			if it.SellIn != first.Items[i].SellIn || it.Quality != first.Items[i].Quality {
				return &AssertionError{
					Type:     AssertLegendaryUnchanged,
					Day:      snap.Day,
					Expected: first.Items[i].String(),
					Actual:   it.String(),
				}
			}
		}
	}
	return nil
}

func assertSellInDecrements(days []engine.Snapshot) error {
	for d := 1; d < len(days); d++ {
		prev, snap := days[d-1], days[d]
		for i, it := range snap.Items {
			if it.Category() == inventory.CategoryLegendary || i >= len(prev.Items) {
				continue
			}
			if want := prev.Items[i].SellIn - 1; it.SellIn != want {
				return &AssertionError{
					Type:     AssertSellInDecrements,
					Day:      snap.Day,
					Expected: fmt.Sprintf("items[%d] sell_in=%d", i, want),
					Actual:   it.String(),
				}
			}
		}
	}
	return nil
}
