package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/gildedrose/internal/inventory"
)

// ParseStock builds items from report lines of the form
// "name, sellIn, quality". Names may themselves contain commas
// ("Sulfuras, Hand of Ragnaros"), so the two numbers are taken from the right.
func ParseStock(lines ...string) ([]inventory.Item, error) {
	items := make([]inventory.Item, 0, len(lines))
	for i, line := range lines {
		it, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// MustParseStock is ParseStock for test fixtures; it panics on bad input.
func MustParseStock(lines ...string) []inventory.Item {
	items, err := ParseStock(lines...)
	if err != nil {
		panic(err)
	}
	return items
}

func parseLine(line string) (inventory.Item, error) {
	rest, qualityText, ok := cutLast(line)
	if !ok {
		return inventory.Item{}, fmt.Errorf("want \"name, sellIn, quality\", got %q", line)
	}
	name, sellInText, ok := cutLast(rest)
	if !ok {
		return inventory.Item{}, fmt.Errorf("want \"name, sellIn, quality\", got %q", line)
	}

	sellIn, err := strconv.Atoi(sellInText)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("sellIn: %w", err)
	}
	quality, err := strconv.Atoi(qualityText)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("quality: %w", err)
	}
	return inventory.NewItem(name, sellIn, quality), nil
}

func cutLast(s string) (before, after string, ok bool) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}
