package inventory

import "fmt"

// Category selects the update rule applied to an item.
type Category int

const (
	categoryUnresolved Category = iota

	// CategoryNormal decays by one per day, two once the date has passed.
	CategoryNormal
	// CategoryAged gains one per day, two once the date has passed.
	CategoryAged
	// CategoryLegendary never changes.
	CategoryLegendary
	// CategoryBackstage gains in tiers as the date nears, then drops to zero.
	CategoryBackstage
)

// Categories lists every valid category in declaration order.
var Categories = []Category{CategoryNormal, CategoryAged, CategoryLegendary, CategoryBackstage}

// CategoryOf maps an item name to its category.
// Any name other than the three special ones is Normal.
func CategoryOf(name string) Category {
	switch name {
	case AgedBrie:
		return CategoryAged
	case Sulfuras:
		return CategoryLegendary
	case BackstagePass:
		return CategoryBackstage
	default:
		return CategoryNormal
	}
}

func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryAged:
		return "aged"
	case CategoryLegendary:
		return "legendary"
	case CategoryBackstage:
		return "backstage"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML reports.
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case CategoryNormal, CategoryAged, CategoryLegendary, CategoryBackstage:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
}
