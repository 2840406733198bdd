// Package inventory implements the daily aging rules for shop stock.
//
// Every Item carries a name, a SellIn countdown and a Quality score. Update
// advances a list of items by exactly one simulated day. The rule applied to
// an item depends on its Category, which is derived from the item name once
// and never changes afterwards.
//
// # Rules
//
//	Category   SellIn   Quality before date   Quality after date
//	Normal     -1       -1                    -2
//	Aged       -1       +1                    +2
//	Backstage  -1       +1 / +2 / +3          0
//	Legendary  0        0                     0
//
// Backstage tiers are picked from SellIn before the decrement: more than
// FirstTierThreshold days gives +1, more than SecondTierThreshold gives +2,
// anything closer gives +3.
//
// Quality never crosses MinQuality or MaxQuality during an adjustment.
// Legendary items are exempt and keep whatever quality they were built with.
//
// The package holds no state between calls. Update mutates the slice it is
// given; Aged returns a fresh copy for callers that prefer immutable values.
package inventory
