package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gildedrose/internal/testutil"
)

func TestRun_SingleDayRules(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/single_day_rules.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Len(t, result.Days, 2)
	assert.Empty(t, result.Errors)
}

func TestRun_RecordsEveryDay(t *testing.T) {
	scenario := &Scenario{
		Name:        "three_days",
		Description: "x",
		Days:        3,
		Items:       []ItemSpec{{Name: "foo", SellIn: 1, Quality: 5}},
		Assertions:  []Assertion{{Type: AssertQualityBounds}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Days, 4)
	for i, snap := range result.Days {
		assert.Equal(t, int64(i), snap.Day)
		assert.Equal(t, testutil.DefaultRunID, snap.RunID)
	}
	final, ok := result.Final()
	require.True(t, ok)
	assert.Equal(t, "foo, -2, 0", final.Items[0].String())
}

func TestRun_FailingAssertion(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_expectation",
		Description: "x",
		RunID:       "run-x",
		Days:        1,
		Items:       []ItemSpec{{Name: "Aged Brie", SellIn: 0, Quality: 49}},
		Assertions: []Assertion{
			{Type: AssertItemState, Expect: &ItemExpect{Quality: ptr(51)}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "quality=50")
	assert.Equal(t, "run-x", result.Days[0].RunID)
}

func TestRun_MissingCatalog(t *testing.T) {
	scenario := &Scenario{
		Name:       "x",
		Catalog:    "/nonexistent/shop.yaml",
		Assertions: []Assertion{{Type: AssertQualityBounds}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stock")
}

func TestRunContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenario := &Scenario{
		Name:       "x",
		Days:       5,
		Items:      []ItemSpec{{Name: "foo", SellIn: 1, Quality: 5}},
		Assertions: []Assertion{{Type: AssertQualityBounds}},
	}

	_, err := RunContext(ctx, scenario)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Final_Empty(t *testing.T) {
	_, ok := NewResult().Final()
	assert.False(t, ok)
}
