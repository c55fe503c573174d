// Copyright (c) 2026 AutoVault. All rights reserved.

package car_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/internal/core/car"
	"github.com/autovault/autovault/internal/platform/apperr"
	"github.com/autovault/autovault/pkg/pagination"
)

// newTestService wires a service over an in-memory store with caching disabled.
func newTestService(cars ...*car.Car) *car.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return car.NewService(car.NewMemoryRepository(cars...), nil, logger, time.Minute)
}

// fixtureFleet returns a small inventory covering the filter axes.
func fixtureFleet() []*car.Car {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*car.Car{
		{
			ID: "bmw-1", Slug: "bmw-3-series-2023", Title: "BMW 3 Series 2023",
			Make: "BMW", Model: "3 Series", Year: 2023, Price: 42_000, Mileage: 12_000,
			Color: "Black", Seats: 5, FuelType: car.FuelGasoline,
			Status: car.StatusAvailable, Dealer: car.DealerRef{ID: "d1", Name: "Summit Motors"},
			Description: "Sporty executive sedan", CreatedAt: base,
		},
		{
			ID: "bmw-2", Slug: "bmw-5-series-2024", Title: "BMW 5 Series 2024",
			Make: "BMW", Model: "5 Series", Year: 2024, Price: 60_000, Mileage: 2_000,
			Color: "White", Seats: 5, FuelType: car.FuelHybrid,
			Status: car.StatusAvailable, Dealer: car.DealerRef{ID: "d1", Name: "Summit Motors"},
			Description: "Flagship comfort", CreatedAt: base.AddDate(0, 1, 0),
		},
		{
			ID: "bmw-3", Slug: "bmw-m2-2022", Title: "BMW M2 2022",
			Make: "BMW", Model: "M2", Year: 2022, Price: 45_000, Mileage: 18_000,
			Color: "Blue", Seats: 4, FuelType: car.FuelGasoline,
			Status: car.StatusSold, Dealer: car.DealerRef{ID: "d1", Name: "Summit Motors"},
			Description: "Compact coupe, sold last week", CreatedAt: base.AddDate(0, 2, 0),
		},
		{
			ID: "audi-1", Slug: "audi-a4-2023", Title: "Audi A4 2023",
			Make: "Audi", Model: "A4", Year: 2023, Price: 44_000, Mileage: 9_000,
			Color: "Black", Seats: 5, FuelType: car.FuelDiesel,
			Status: car.StatusAvailable, Dealer: car.DealerRef{ID: "d2", Name: "Riverside Autos"},
			Description: "Special chars: .*+? in the listing text", CreatedAt: base.AddDate(0, 3, 0),
		},
	}
}

/*
TestService_Listing_FilterExample verifies the canonical filter scenario:
a 40k-50k BMW query matches exactly the Available 42k listing.
*/
func TestService_Listing_FilterExample(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	params, err := url.ParseQuery("make=BMW&minPrice=40000&maxPrice=50000")
	require.NoError(t, err)

	result, err := service.Listing(context.Background(), params, pagination.Params{Page: 1, Limit: 12})
	require.NoError(t, err)

	// 1. The Sold M2 at 45k is excluded by the Available default
	require.Len(t, result.Cars, 1)
	assert.Equal(t, "bmw-1", result.Cars[0].ID)

	// 2. Pagination metadata reflects the single match
	assert.Equal(t, 1, result.Pages.Total)
	assert.Equal(t, 1, result.Pages.TotalPages)
	assert.False(t, result.Pages.HasNext)

	// 3. Price range collapses onto the single match
	assert.Equal(t, car.PriceRange{Min: 42_000, Max: 42_000}, result.PriceRange)
}

/*
TestService_Search_ReachesFullInventory verifies that search skips the
Available default and reports the flat pagination shape.
*/
func TestService_Search_ReachesFullInventory(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	params, err := url.ParseQuery("make=BMW&minPrice=40000&maxPrice=50000")
	require.NoError(t, err)

	result, err := service.Search(context.Background(), params, pagination.Params{Page: 1, Limit: 12})
	require.NoError(t, err)

	// Sold stock now counts
	assert.Equal(t, 2, result.TotalCars)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasMore)
}

/*
TestService_Search_LiteralMetacharacters verifies that pattern characters in
search text match listings literally.
*/
func TestService_Search_LiteralMetacharacters(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	// 1. The literal ".*+?" sequence matches the Audi description
	result, err := service.Search(context.Background(), url.Values{"search": {".*+?"}}, pagination.Params{Page: 1, Limit: 12})
	require.NoError(t, err)
	require.Len(t, result.Cars, 1)
	assert.Equal(t, "audi-1", result.Cars[0].ID)

	// 2. A wildcard-looking term matches nothing rather than everything
	result, err = service.Search(context.Background(), url.Values{"search": {"%"}}, pagination.Params{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, result.Cars)
}

/*
TestService_Listing_PageClamp verifies that out-of-range pages clamp to the
last page instead of returning an empty window.
*/
func TestService_Listing_PageClamp(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	result, err := service.Listing(context.Background(), url.Values{}, pagination.Params{Page: 99, Limit: 2})
	require.NoError(t, err)

	// Three Available cars at two per page: page 99 clamps to page 2
	assert.Equal(t, 3, result.Pages.Total)
	assert.Equal(t, 2, result.Pages.TotalPages)
	assert.Equal(t, 2, result.Pages.CurrentPage)
	assert.Len(t, result.Cars, 1)
	assert.True(t, result.Pages.HasPrev)
	assert.False(t, result.Pages.HasNext)
}

/*
TestService_Detail verifies slug resolution, the related rail rules, and the
not-found behavior.
*/
func TestService_Detail(t *testing.T) {
	fleet := fixtureFleet()
	service := newTestService(fleet...)

	// 1. Known slug resolves with its related rail
	detail, err := service.Detail(context.Background(), "bmw-3-series-2023")
	require.NoError(t, err)
	assert.Equal(t, "bmw-1", detail.Car.ID)

	// Related: same make, Available, within the 20 percent price band.
	// The 60k 5 Series falls outside [33.6k, 50.4k]; the sold M2 is excluded.
	assert.Empty(t, detail.Related)

	// 2. Unknown slug yields a typed not-found
	_, err = service.Detail(context.Background(), "no-such-car")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Related_BandAndCap verifies the price band, self exclusion, and
the four-listing cap.
*/
func TestService_Related_BandAndCap(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reference := &car.Car{
		ID: "ref", Slug: "tesla-model-3-2023", Make: "Tesla", Model: "Model 3",
		Price: 50_000, Status: car.StatusAvailable, CreatedAt: base,
	}

	fleet := []*car.Car{reference}
	// Six in-band siblings: only four newest may return
	for i := 0; i < 6; i++ {
		fleet = append(fleet, &car.Car{
			ID:        string(rune('a' + i)),
			Make:      "Tesla",
			Price:     45_000 + float64(i)*1_000,
			Status:    car.StatusAvailable,
			CreatedAt: base.AddDate(0, 0, i+1),
		})
	}
	// Out of band and wrong status
	fleet = append(fleet,
		&car.Car{ID: "cheap", Make: "Tesla", Price: 30_000, Status: car.StatusAvailable, CreatedAt: base},
		&car.Car{ID: "sold", Make: "Tesla", Price: 50_000, Status: car.StatusSold, CreatedAt: base},
	)

	service := newTestService(fleet...)

	related, err := service.Related(context.Background(), reference)
	require.NoError(t, err)

	// 1. Capped at four, newest first
	require.Len(t, related, 4)
	assert.Equal(t, "f", related[0].ID)

	// 2. Reference, out-of-band, and sold listings never appear
	for _, match := range related {
		assert.NotEqual(t, "ref", match.ID)
		assert.NotEqual(t, "cheap", match.ID)
		assert.NotEqual(t, "sold", match.ID)
	}
}

/*
TestService_FacetValues verifies sorted distinct extraction with numeric
seat ordering, served without a cache layer.
*/
func TestService_FacetValues(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	facets, err := service.FacetValues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Audi", "BMW"}, facets.Makes)
	assert.Equal(t, []string{"Black", "Blue", "White"}, facets.Colors)
	assert.Equal(t, []int{4, 5}, facets.Seats)
	assert.Contains(t, facets.FuelTypes, string(car.FuelDiesel))
}

/*
TestService_FacetCounts verifies grouped counts respect the active filter.
*/
func TestService_FacetCounts(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	counts, err := service.FacetCounts(context.Background(), url.Values{"color": {"Black"}})
	require.NoError(t, err)

	// Available black cars: one BMW, one Audi
	assert.Equal(t, 1, counts.Makes["BMW"])
	assert.Equal(t, 1, counts.Makes["Audi"])
	assert.Zero(t, counts.Makes["Porsche"])
}

/*
TestService_CreateCar verifies validation, identity generation, and slug
derivation for new listings.
*/
func TestService_CreateCar(t *testing.T) {
	service := newTestService()

	// 1. Invalid payload surfaces field-level validation errors
	err := service.CreateCar(context.Background(), &car.Car{Make: "Tesla"})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.NotEmpty(t, appError.Details)

	// 2. Valid payload derives identity fields
	listing := &car.Car{
		Make: "Tesla", Model: "Model 3", Year: 2023, Price: 42_000,
		Color: "Red", Seats: 5, Description: "Long range AWD",
		Images: []string{"https://cdn.autovault.app/m3.jpg"}, Features: []string{"Autopilot"},
		Dealer: car.DealerRef{ID: "d1"},
	}
	require.NoError(t, service.CreateCar(context.Background(), listing))

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "tesla-model-3-2023", listing.Slug)
	assert.Equal(t, "Tesla Model 3 2023", listing.Title)
	assert.Equal(t, car.StatusAvailable, listing.Status)

	// 3. Duplicate identity conflicts
	duplicate := *listing
	duplicate.ID = ""
	err = service.CreateCar(context.Background(), &duplicate)
	require.Error(t, err)
}

/*
TestService_UpdateCar_SlugRecompute verifies that identity changes recompute
the slug while cosmetic changes leave it untouched.
*/
func TestService_UpdateCar_SlugRecompute(t *testing.T) {
	listing := &car.Car{
		ID: "car-1", Slug: "tesla-model-3-2023", Title: "Tesla Model 3 2023",
		Make: "Tesla", Model: "Model 3", Year: 2023, Price: 42_000,
		Status: car.StatusAvailable,
	}
	store := car.NewMemoryRepository(listing)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := car.NewService(store, nil, logger, time.Minute)

	// 1. Cosmetic update keeps the slug and returns the merged record
	updated, err := service.UpdateCar(context.Background(), &car.Car{ID: "car-1", Color: "Blue"})
	require.NoError(t, err)
	assert.Equal(t, "tesla-model-3-2023", updated.Slug)
	assert.Equal(t, "Tesla", updated.Make)
	assert.Equal(t, "Blue", updated.Color)
	assert.Equal(t, 42_000.0, updated.Price)

	// 2. Year change recomputes slug and title
	updated, err = service.UpdateCar(context.Background(), &car.Car{ID: "car-1", Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "tesla-model-3-2024", updated.Slug)
	assert.Equal(t, "Tesla Model 3 2024", updated.Title)

	current, err := store.FindByID(context.Background(), "car-1")
	require.NoError(t, err)
	assert.Equal(t, "tesla-model-3-2024", current.Slug)

	// 3. Unknown ID yields not-found
	_, err = service.UpdateCar(context.Background(), &car.Car{ID: "ghost", Color: "Red"})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Stats verifies the fleet aggregates over the fixture inventory.
*/
func TestService_Stats(t *testing.T) {
	service := newTestService(fixtureFleet()...)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalCars)
	assert.Equal(t, 3, stats.AvailableCars)
	assert.Equal(t, 1, stats.SoldCars)
	assert.InDelta(t, 47_750, stats.AveragePrice, 0.01)
}
