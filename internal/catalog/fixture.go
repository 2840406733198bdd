package catalog

import "github.com/roach88/gildedrose/internal/inventory"

// Fixture returns the stock the shop opens with when no catalog is given.
// "Conjured Mana Cake" has no special rule and ages like any normal item.
func Fixture() *Catalog {
	return &Catalog{
		Source: "fixture",
		Items: []inventory.Item{
			inventory.NewItem("+5 Dexterity Vest", 10, 20),
			inventory.NewItem(inventory.AgedBrie, 2, 0),
			inventory.NewItem("Elixir of the Mongoose", 5, 7),
			inventory.NewItem(inventory.Sulfuras, 0, inventory.LegendaryQuality),
			inventory.NewItem(inventory.Sulfuras, -1, inventory.LegendaryQuality),
			inventory.NewItem(inventory.BackstagePass, 15, 20),
			inventory.NewItem(inventory.BackstagePass, 10, 49),
			inventory.NewItem(inventory.BackstagePass, 5, 49),
			inventory.NewItem("Conjured Mana Cake", 3, 6),
		},
	}
}
