// Copyright (c) 2026 AutoVault. All rights reserved.

package car

// # Sorting

// Ordering is the resolved sort instruction consumed by the storage layer.
type Ordering struct {
	Column     string
	Descending bool
}

// Sort keys accepted by the listing and search endpoints.
const (
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortMileageAsc  = "mileage-asc"
	SortMileageDesc = "mileage-desc"
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortViews       = "views"
	SortFavorites   = "favorites"
)

// sortTable maps each public sort key to its storage ordering.
var sortTable = map[string]Ordering{
	SortPriceAsc:    {Column: FieldPrice, Descending: false},
	SortPriceDesc:   {Column: FieldPrice, Descending: true},
	SortMileageAsc:  {Column: FieldMileage, Descending: false},
	SortMileageDesc: {Column: FieldMileage, Descending: true},
	SortNewest:      {Column: "created_at", Descending: true},
	SortOldest:      {Column: "created_at", Descending: false},
	SortViews:       {Column: "views", Descending: true},
	SortFavorites:   {Column: "favorites", Descending: true},
}

/*
ResolveSort maps a public sort key to a storage [Ordering].

Description: Total over all inputs. Unknown, empty, or malformed keys fall
back to newest-first so every request carries a deterministic order.

Parameters:
  - key: string (Raw sort query parameter)

Returns:
  - Ordering: Column and direction for the storage layer
*/
func ResolveSort(key string) Ordering {
	if ordering, ok := sortTable[key]; ok {
		return ordering
	}
	return sortTable[SortNewest]
}
