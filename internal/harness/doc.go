// Package harness runs stock scenarios and checks their outcome.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: backstage_tiers
//	description: "Passes gain faster as the concert nears"
//	run_id: "test-run-backstage"   # optional
//	catalog: ../catalogs/shop.yaml # or an inline items list
//	items:
//	  - name: Backstage passes to a TAFKAL80ETC concert
//	    sell_in: 11
//	    quality: 20
//	days: 12
//	assertions:
//	  - type: item_state
//	    index: 0
//	    day: 1             # optional, defaults to the last day
//	    expect: { sell_in: 10, quality: 21 }
//	  - type: quality_bounds
//	  - type: legendary_unchanged
//	  - type: sell_in_decrements
//
// # Assertion Types
//
//   - item_state: one item's sell_in and/or quality on a given day
//   - quality_bounds: every non-legendary item stays within [0, 50] on every day
//   - legendary_unchanged: legendary items never change
//   - sell_in_decrements: non-legendary sell_in drops by exactly one per day
//
// # Deterministic Output
//
// Every scenario runs on a fresh engine with a fixed run ID, so the daily
// report it produces is byte-identical across runs. RunWithGolden compares
// that report against testdata/golden/<name>.golden.
package harness
