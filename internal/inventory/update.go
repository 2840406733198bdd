package inventory

// Update advances every item by one simulated day, in place and in order.
func Update(items []Item) {
	for i := range items {
		items[i].Age()
	}
}

// Aged returns a copy of items advanced by one day. The input is untouched.
func Aged(items []Item) []Item {
	if items == nil {
		return nil
	}
	next := make([]Item, len(items))
	copy(next, items)
	Update(next)
	return next
}

// Age advances a single item by one simulated day.
//
// Order matters: the quality delta is picked from SellIn before the
// decrement, and the past-date adjustment is driven by SellIn after it.
func (it *Item) Age() {
	switch it.resolve() {
	case CategoryLegendary:
		return

	case CategoryAged:
		it.raise(1)
		it.SellIn--
		if it.SellIn < SellByDate {
			it.raise(1)
		}

	case CategoryBackstage:
		it.raise(backstageGain(it.SellIn))
		it.SellIn--
		if it.SellIn < SellByDate {
			it.Quality = MinQuality
		}

	default:
		it.lower(1)
		it.SellIn--
		if it.SellIn < SellByDate {
			it.lower(1)
		}
	}
}

// backstageGain returns the daily gain for a pass with sellIn days left.
func backstageGain(sellIn int) int {
	switch {
	case sellIn > FirstTierThreshold:
		return 1
	case sellIn > SecondTierThreshold:
		return 2
	default:
		return 3
	}
}

// raise adds n to quality without crossing MaxQuality.
// Quality already at or above the cap is left alone.
func (it *Item) raise(n int) {
	if it.Quality >= MaxQuality {
		return
	}
	it.Quality = min(it.Quality+n, MaxQuality)
}

// lower subtracts n from quality without crossing MinQuality.
// Quality already at or below the floor is left alone.
func (it *Item) lower(n int) {
	if it.Quality <= MinQuality {
		return
	}
	it.Quality = max(it.Quality-n, MinQuality)
}
