package domain

import (
	"sort"

	"github.com/google/uuid"
)

// OrderingPolicy is one of the two feed ordering strategies. Policies are
// explicit types rather than inline comparators so each policy's invariants
// stay unit-testable in isolation.
type OrderingPolicy interface {
	Name() string
	Order(items []RankedItem) []RankedItem
}

// PolicyFor selects the ordering strategy from the requested category:
// the discovery ("all") view guarantees sponsor placement, a narrowed
// category view lets relevance dominate.
func PolicyFor(query FeedQuery) OrderingPolicy {
	if query.IsAllCategories() {
		return AllCategoriesPolicy{}
	}
	return SingleCategoryPolicy{}
}

// AllCategoriesPolicy pins live-promoted items to the top of the page,
// ordered purely by recency among themselves. Everything else (injected and
// unpromoted organic items) forms a second block, also ordered purely by
// recency. Score never fine-sorts here; it only decided band membership
// upstream.
type AllCategoriesPolicy struct{}

func (AllCategoriesPolicy) Name() string { return "all_categories" }

func (AllCategoriesPolicy) Order(items []RankedItem) []RankedItem {
	promoted := make([]RankedItem, 0, len(items))
	rest := make([]RankedItem, 0, len(items))
	for _, item := range items {
		if item.Band == BandPromoted {
			promoted = append(promoted, item)
		} else {
			rest = append(rest, item)
		}
	}
	byRecency(promoted)
	byRecency(rest)
	return append(promoted, rest...)
}

// SingleCategoryPolicy orders by priority band, then score, then recency.
// Within a narrowed view the user has expressed intent, so personalization
// may outrank stale promoted content only through its band and score, and
// bands still guarantee Promoted > Injected > Organic.
type SingleCategoryPolicy struct{}

func (SingleCategoryPolicy) Name() string { return "single_category" }

func (SingleCategoryPolicy) Order(items []RankedItem) []RankedItem {
	ordered := make([]RankedItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Band != ordered[j].Band {
			return ordered[i].Band > ordered[j].Band
		}
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].SortKey.After(ordered[j].SortKey)
	})
	return ordered
}

func byRecency(items []RankedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey.After(items[j].SortKey)
	})
}

// DeduplicateByID removes duplicate identities keeping the first occurrence.
// Injected identities are namespaced, so a collision with organic ids cannot
// happen by construction; this stays as a safety net against future source
// overlap.
func DeduplicateByID(items []RankedItem) []RankedItem {
	seen := make(map[uuid.UUID]struct{}, len(items))
	result := items[:0]
	for _, item := range items {
		if _, ok := seen[item.Item.ID]; ok {
			continue
		}
		seen[item.Item.ID] = struct{}{}
		result = append(result, item)
	}
	return result
}
