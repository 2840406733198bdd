package inventory

import "fmt"

// Quality bounds.
const (
	MinQuality = 0
	MaxQuality = 50

	// LegendaryQuality is the conventional quality of a legendary item.
	// The update rules never read it; catalogs use it for validation hints.
	LegendaryQuality = 80
)

// SellIn thresholds.
const (
	// SellByDate is the SellIn value at which the date counts as passed
	// once the day's decrement has been applied.
	SellByDate = 0

	// FirstTierThreshold and SecondTierThreshold split backstage passes
	// into +1, +2 and +3 daily quality gains.
	FirstTierThreshold  = 10
	SecondTierThreshold = 5
)

// Names that select a special category. Matching is exact.
const (
	AgedBrie      = "Aged Brie"
	Sulfuras      = "Sulfuras, Hand of Ragnaros"
	BackstagePass = "Backstage passes to a TAFKAL80ETC concert"
)

// Item is one stock-keeping unit.
//
// Items built with NewItem have their category resolved immediately. Items
// built as struct literals get it resolved on their first update; renaming
// an item after that has no effect on its category.
type Item struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`

	category Category
}

// NewItem creates an item and resolves its category from name.
func NewItem(name string, sellIn, quality int) Item {
	return Item{
		Name:     name,
		SellIn:   sellIn,
		Quality:  quality,
		category: CategoryOf(name),
	}
}

// Category returns the item's category.
func (it Item) Category() Category {
	if it.category == categoryUnresolved {
		return CategoryOf(it.Name)
	}
	return it.category
}

// String formats the item as "name, sellIn, quality".
func (it Item) String() string {
	return fmt.Sprintf("%s, %d, %d", it.Name, it.SellIn, it.Quality)
}

// resolve pins the category so later renames cannot change the rule applied.
func (it *Item) resolve() Category {
	if it.category == categoryUnresolved {
		it.category = CategoryOf(it.Name)
	}
	return it.category
}
