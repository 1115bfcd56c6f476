package source

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// QualityOrder lists quality labels from most to least preferred.
type QualityOrder []string

// Rank is the position of the label in the order.
// Unknown labels rank after every known one.
func (o QualityOrder) Rank(quality string) int {
	if i := slices.Index(o, quality); i >= 0 {
		return i
	}
	return len(o)
}

// Sort returns a copy of variants ordered by rank.
// Variants of equal rank keep their relative order.
func (o QualityOrder) Sort(variants []*Variant) []*Variant {
	sorted := make([]*Variant, len(variants))
	copy(sorted, variants)

	slices.SortStableFunc(sorted, func(a, b *Variant) int {
		return cmp.Compare(o.rankOf(a), o.rankOf(b))
	})
	return sorted
}

func (o QualityOrder) rankOf(v *Variant) int {
	if v == nil {
		return len(o) + 1
	}
	return o.Rank(v.Quality)
}
