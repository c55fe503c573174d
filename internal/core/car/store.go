// Copyright (c) 2026 AutoVault. All rights reserved.

package car

import "context"

// # Car Data Access

// Repository defines the data access contract for the car domain.
//
// Two implementations exist: the PostgreSQL store used in production and an
// in-memory store used by tests and local development seeding.
type Repository interface {

	/*
		List returns a filtered, ordered, paginated slice of cars.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Criteria for makes, prices, status, search)
		  - ordering: Ordering (Resolved sort instruction)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Car: Slice of matching listings
		  - error: Storage retrieval failures
	*/
	List(context context.Context, filter Filter, ordering Ordering, limit, offset int) ([]*Car, error)

	/*
		Count returns the total number of cars matching the filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - int: Total matching rows
		  - error: Storage retrieval failures
	*/
	Count(context context.Context, filter Filter) (int, error)

	/*
		PriceRange returns the min/max price aggregate over the filtered set.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - PriceRange: Zero-valued when no rows match
		  - error: Storage retrieval failures
	*/
	PriceRange(context context.Context, filter Filter) (PriceRange, error)

	/*
		FindBySlug returns the car matching the unique SEO identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Car: The hydrated listing with its dealer reference
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Car, error)

	/*
		FindByID returns the car with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Car: The hydrated listing
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Car, error)

	/*
		Create persists a new car listing.

		Parameters:
		  - context: context.Context
		  - car: *Car (Metadata and initial state)

		Returns:
		  - error: Conflict on duplicate slug, otherwise storage failures
	*/
	Create(context context.Context, car *Car) error

	/*
		Update persists changes to an existing listing's mutable fields.

		Parameters:
		  - context: context.Context
		  - car: *Car (Target ID and modified attributes)

		Returns:
		  - error: ErrNotFound if missing, otherwise storage failures
	*/
	Update(context context.Context, car *Car) error

	/*
		IncrementViews atomically increments the view counter on a listing.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: Atomic update failure
	*/
	IncrementViews(context context.Context, id string) error

	/*
		Related returns listings similar to the given car: same make,
		different id, Available, priced within 20 percent either way,
		newest first.

		Parameters:
		  - context: context.Context
		  - car: *Car (Reference listing)
		  - limit: int (Hard cap on results)

		Returns:
		  - []*Car: Up to limit similar listings, possibly empty
		  - error: Storage retrieval failures
	*/
	Related(context context.Context, car *Car, limit int) ([]*Car, error)

	/*
		DistinctFacets returns the distinct values of every filterable
		attribute, each list sorted (seats numerically).

		Parameters:
		  - context: context.Context

		Returns:
		  - FacetValues: Sorted distinct values per attribute
		  - error: Storage retrieval failures
	*/
	DistinctFacets(context context.Context) (FacetValues, error)

	/*
		FacetCounts returns per-value listing counts for each facet,
		scoped to the given filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - FacetCounts: Value-to-count maps per attribute
		  - error: Storage retrieval failures
	*/
	FacetCounts(context context.Context, filter Filter) (FacetCounts, error)

	/*
		Stats returns fleet-wide aggregates for the dashboard.

		Parameters:
		  - context: context.Context

		Returns:
		  - Stats: Totals, averages, and view sums
		  - error: Storage retrieval failures
	*/
	Stats(context context.Context) (Stats, error)
}
