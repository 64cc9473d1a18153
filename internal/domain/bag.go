package domain

// Category is one of the fixed groupings discs are classified into
type Category string

const (
	DistanceDrivers Category = "Distance Drivers"
	FairwayDrivers  Category = "Fairway Drivers"
	MidRanges       Category = "Mid-Ranges"
	PuttApproach    Category = "Putt/Approach"
)

// Categories lists every category in display order.
var Categories = []Category{DistanceDrivers, FairwayDrivers, MidRanges, PuttApproach}

// Bag maps each category to its ordered discs
type Bag map[Category][]Disc

// EmptyBag returns a bag with all four categories present and empty.
func EmptyBag() Bag {
	bag := make(Bag, len(Categories))
	for _, c := range Categories {
		bag[c] = []Disc{}
	}
	return bag
}

// Discs returns the discs in a category. Absent categories yield an empty slice.
func (b Bag) Discs(c Category) []Disc {
	if discs, ok := b[c]; ok && discs != nil {
		return discs
	}
	return []Disc{}
}

// AllDiscs concatenates every category in display order.
func (b Bag) AllDiscs() []Disc {
	all := make([]Disc, 0, b.Count())
	for _, c := range Categories {
		all = append(all, b[c]...)
	}
	return all
}

// Count returns the number of discs across all categories.
func (b Bag) Count() int {
	n := 0
	for _, c := range Categories {
		n += len(b[c])
	}
	return n
}

// Normalize returns a copy containing exactly the four fixed categories,
// filling absent ones with empty slices and dropping unknown keys.
func (b Bag) Normalize() Bag {
	out := EmptyBag()
	for _, c := range Categories {
		if discs := b[c]; len(discs) > 0 {
			out[c] = append([]Disc(nil), discs...)
		}
	}
	return out
}
