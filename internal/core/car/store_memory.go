// Copyright (c) 2026 AutoVault. All rights reserved.

package car

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/autovault/autovault/internal/platform/apperr"
	"github.com/autovault/autovault/pkg/slice"
)

// # In-Memory Repository

// MemoryRepository is a process-local [Repository] backed by a slice.
//
// It serves two purposes: deterministic fixtures for the service and handler
// test suites, and a zero-dependency data source for local development when
// no database is configured. Filtering and ordering semantics are kept in
// lockstep with the PostgreSQL store.
type MemoryRepository struct {
	mu   sync.RWMutex
	cars []*Car
}

// NewMemoryRepository constructs an in-memory store seeded with the given cars.
func NewMemoryRepository(cars ...*Car) *MemoryRepository {
	return &MemoryRepository{cars: cars}
}

// matches reports whether a car satisfies every constraint of the filter.
//
// Set membership is exact, mirroring the SQL store's `= ANY($n)` predicate.
// Only the free-text search is case-insensitive.
func matches(car *Car, filter Filter) bool {
	if len(filter.Makes) > 0 && !containsString(filter.Makes, car.Make) {
		return false
	}
	if len(filter.Models) > 0 && !containsString(filter.Models, car.Model) {
		return false
	}
	if len(filter.Colors) > 0 && !containsString(filter.Colors, car.Color) {
		return false
	}
	if len(filter.Seats) > 0 && !containsInt(filter.Seats, car.Seats) {
		return false
	}
	if filter.MinPrice != nil && car.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && car.Price > *filter.MaxPrice {
		return false
	}
	if filter.Status != "" && car.Status != filter.Status {
		return false
	}
	if filter.HasSearch() && !searchMatches(car, filter.Search) {
		return false
	}
	return true
}

// searchMatches checks the free-text term as a literal case-insensitive
// substring over the searchable fields.
func searchMatches(car *Car, term string) bool {
	needle := strings.ToLower(term)
	for _, haystack := range []string{car.Make, car.Model, car.Description, car.Dealer.Name} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func containsInt(values []int, target int) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// orderCars sorts in place by the resolved ordering with an id tiebreak.
func orderCars(cars []*Car, ordering Ordering) {
	sort.SliceStable(cars, func(i, j int) bool {
		a, b := cars[i], cars[j]

		var less, equal bool
		switch ordering.Column {
		case FieldPrice:
			less, equal = a.Price < b.Price, a.Price == b.Price
		case FieldMileage:
			less, equal = a.Mileage < b.Mileage, a.Mileage == b.Mileage
		case "views":
			less, equal = a.Views < b.Views, a.Views == b.Views
		case "favorites":
			less, equal = a.Favorites < b.Favorites, a.Favorites == b.Favorites
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}

		if equal {
			return a.ID > b.ID
		}
		if ordering.Descending {
			return !less
		}
		return less
	})
}

// # Read Paths

// List implements [Repository].
func (store *MemoryRepository) List(_ context.Context, filter Filter, ordering Ordering, limit, offset int) ([]*Car, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matched := slice.Filter(store.cars, func(car *Car) bool { return matches(car, filter) })
	orderCars(matched, ordering)

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

// Count implements [Repository].
func (store *MemoryRepository) Count(_ context.Context, filter Filter) (int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(slice.Filter(store.cars, func(car *Car) bool { return matches(car, filter) })), nil
}

// PriceRange implements [Repository].
func (store *MemoryRepository) PriceRange(_ context.Context, filter Filter) (PriceRange, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matched := slice.Filter(store.cars, func(car *Car) bool { return matches(car, filter) })
	if len(matched) == 0 {
		return PriceRange{}, nil
	}

	priceRange := PriceRange{Min: matched[0].Price, Max: matched[0].Price}
	for _, car := range matched[1:] {
		if car.Price < priceRange.Min {
			priceRange.Min = car.Price
		}
		if car.Price > priceRange.Max {
			priceRange.Max = car.Price
		}
	}

	return priceRange, nil
}

// FindBySlug implements [Repository].
func (store *MemoryRepository) FindBySlug(_ context.Context, slug string) (*Car, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, car := range store.cars {
		if car.Slug == slug {
			return car, nil
		}
	}
	return nil, apperr.NotFound("car")
}

// FindByID implements [Repository].
func (store *MemoryRepository) FindByID(_ context.Context, id string) (*Car, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, car := range store.cars {
		if car.ID == id {
			return car, nil
		}
	}
	return nil, apperr.NotFound("car")
}

// Related implements [Repository].
func (store *MemoryRepository) Related(_ context.Context, reference *Car, limit int) ([]*Car, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	lower, upper := reference.Price*0.8, reference.Price*1.2

	related := slice.Filter(store.cars, func(car *Car) bool {
		return car.Make == reference.Make &&
			car.ID != reference.ID &&
			car.Status == StatusAvailable &&
			car.Price >= lower && car.Price <= upper
	})

	orderCars(related, Ordering{Column: "created_at", Descending: true})

	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// # Facets & Aggregates

// DistinctFacets implements [Repository].
func (store *MemoryRepository) DistinctFacets(_ context.Context) (FacetValues, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	facets := FacetValues{
		Makes:     sortedUnique(slice.Map(store.cars, func(car *Car) string { return car.Make })),
		Models:    sortedUnique(slice.Map(store.cars, func(car *Car) string { return car.Model })),
		Colors:    sortedUnique(slice.Map(store.cars, func(car *Car) string { return car.Color })),
		FuelTypes: sortedUnique(slice.Map(store.cars, func(car *Car) string { return string(car.FuelType) })),
		Seats:     slice.Unique(slice.Map(store.cars, func(car *Car) int { return car.Seats })),
	}
	sort.Ints(facets.Seats)

	return facets, nil
}

// sortedUnique drops empty strings, dedupes, and sorts.
func sortedUnique(values []string) []string {
	unique := slice.Unique(slice.Filter(values, func(value string) bool { return value != "" }))
	sort.Strings(unique)
	return unique
}

// FacetCounts implements [Repository].
func (store *MemoryRepository) FacetCounts(_ context.Context, filter Filter) (FacetCounts, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matched := slice.Filter(store.cars, func(car *Car) bool { return matches(car, filter) })

	counts := FacetCounts{
		Makes:     make(map[string]int),
		Models:    make(map[string]int),
		Colors:    make(map[string]int),
		FuelTypes: make(map[string]int),
	}
	for _, car := range matched {
		counts.Makes[car.Make]++
		counts.Models[car.Model]++
		counts.Colors[car.Color]++
		counts.FuelTypes[string(car.FuelType)]++
	}

	return counts, nil
}

// Stats implements [Repository].
func (store *MemoryRepository) Stats(_ context.Context) (Stats, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	stats := Stats{TotalCars: len(store.cars)}
	if stats.TotalCars == 0 {
		return stats, nil
	}

	var priceSum, mileageSum float64
	for _, car := range store.cars {
		if car.Status == StatusAvailable {
			stats.AvailableCars++
		}
		if car.Status == StatusSold {
			stats.SoldCars++
		}
		priceSum += car.Price
		mileageSum += float64(car.Mileage)
		stats.TotalViews += car.Views
	}

	stats.AveragePrice = priceSum / float64(stats.TotalCars)
	stats.AverageMileage = mileageSum / float64(stats.TotalCars)

	return stats, nil
}

// # Write Paths

// Create implements [Repository].
func (store *MemoryRepository) Create(_ context.Context, car *Car) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.cars {
		if existing.Slug == car.Slug {
			return apperr.Conflict("A car with this slug already exists")
		}
	}

	now := time.Now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now
	store.cars = append(store.cars, car)

	return nil
}

// Update implements [Repository]. Matches the PATCH semantics of the
// PostgreSQL store: only populated fields overwrite.
func (store *MemoryRepository) Update(_ context.Context, car *Car) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.cars {
		if existing.ID != car.ID {
			continue
		}

		if car.Slug != "" {
			existing.Slug = car.Slug
		}
		if car.Title != "" {
			existing.Title = car.Title
		}
		if car.Make != "" {
			existing.Make = car.Make
		}
		if car.Model != "" {
			existing.Model = car.Model
		}
		if car.Year != 0 {
			existing.Year = car.Year
		}
		if car.Price != 0 {
			existing.Price = car.Price
		}
		if car.Mileage != 0 {
			existing.Mileage = car.Mileage
		}
		if car.Tag != "" {
			existing.Tag = car.Tag
		}
		if len(car.Images) > 0 {
			existing.Images = car.Images
		}
		if car.Transmission != "" {
			existing.Transmission = car.Transmission
		}
		if car.FuelType != "" {
			existing.FuelType = car.FuelType
		}
		if car.DriveType != "" {
			existing.DriveType = car.DriveType
		}
		if car.Color != "" {
			existing.Color = car.Color
		}
		if car.Seats != 0 {
			existing.Seats = car.Seats
		}
		if len(car.Features) > 0 {
			existing.Features = car.Features
		}
		if car.Engine != "" {
			existing.Engine = car.Engine
		}
		if car.Description != "" {
			existing.Description = car.Description
		}
		if car.Status != "" {
			existing.Status = car.Status
		}
		existing.UpdatedAt = time.Now().UTC()

		return nil
	}

	return apperr.NotFound("car")
}

// IncrementViews implements [Repository].
func (store *MemoryRepository) IncrementViews(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, car := range store.cars {
		if car.ID == id {
			car.Views++
			return nil
		}
	}
	return apperr.NotFound("car")
}
