// Copyright (c) 2026 AutoVault. All rights reserved.

package car

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/autovault/autovault/internal/platform/constants"
	"github.com/autovault/autovault/internal/platform/validate"
	"github.com/autovault/autovault/pkg/pagination"
	"github.com/autovault/autovault/pkg/slug"
	"github.com/autovault/autovault/pkg/uuid"
)

// # Service Layer

const (
	// RelatedLimit caps the similar-cars rail on detail pages.
	RelatedLimit = 4

	// viewsTimeout bounds the fire-and-forget view counter write.
	viewsTimeout = 5 * time.Second
)

// Service orchestrates the business logic for the car inventory.
// It acts as the primary entry point for storefront discovery and
// admin inventory management.
type Service struct {
	repo     Repository
	cache    *redis.Client // nil disables facet/stats caching
	logger   *slog.Logger
	facetTTL time.Duration
}

// NewService constructs a new [Service] with its required dependencies.
// A nil redis client is allowed; facet and stats reads then always hit
// the repository.
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger, facetTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		facetTTL: facetTTL,
	}
}

// # Result Shapes

// ListingResult is the payload of the storefront listing page.
type ListingResult struct {
	Cars       []*Car           `json:"cars"`
	Pages      pagination.Pages `json:"pages"`
	PriceRange PriceRange       `json:"price_range"`
	Sort       string           `json:"sort"`
	Filter     Filter           `json:"filter"`
}

// SearchResult is the payload of the search endpoint. Same data as a
// listing, reshaped for the search results page.
type SearchResult struct {
	Cars        []*Car     `json:"cars"`
	TotalCars   int        `json:"total_cars"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	HasMore     bool       `json:"has_more"`
	PriceRange  PriceRange `json:"price_range"`
}

// DetailResult bundles a car with its similar-listings rail.
type DetailResult struct {
	Car     *Car   `json:"car"`
	Related []*Car `json:"related"`
}

// # Discovery

/*
Listing retrieves a filtered, sorted, paginated page of the inventory.

Description: The count and price-range aggregates run concurrently via an
errgroup; the page fetch follows so its offset can be clamped against the
actual total. The three reads are not transactional, so a concurrent write
may skew counts against rows by one. That skew is accepted on a marketing
surface.

Parameters:
  - context: context.Context
  - params: url.Values (Raw query string, filter and sort keys)
  - page: pagination.Params (Requested page and limit)

Returns:
  - *ListingResult: Cars, pagination metadata, and the price range
  - error: Repository failures
*/
func (service *Service) Listing(context context.Context, params url.Values, page pagination.Params) (*ListingResult, error) {
	return service.list(context, BuildFilter(params), params.Get("sort"), page)
}

/*
Search retrieves inventory matches for the search results page.

Description: Runs the same pipeline as [Service.Listing] but without the
Available status default, so search reaches the full inventory. The result
is reshaped into the search page's flat pagination fields.

Parameters:
  - context: context.Context
  - params: url.Values
  - page: pagination.Params

Returns:
  - *SearchResult: Matches with flat pagination fields
  - error: Repository failures
*/
func (service *Service) Search(context context.Context, params url.Values, page pagination.Params) (*SearchResult, error) {
	listing, err := service.list(context, BuildSearchFilter(params), params.Get("sort"), page)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Cars:        listing.Cars,
		TotalCars:   listing.Pages.Total,
		CurrentPage: listing.Pages.CurrentPage,
		TotalPages:  listing.Pages.TotalPages,
		HasMore:     listing.Pages.HasNext,
		PriceRange:  listing.PriceRange,
	}, nil
}

// list is the shared listing pipeline behind Listing and Search.
func (service *Service) list(ctx context.Context, filter Filter, sortKey string, page pagination.Params) (*ListingResult, error) {
	ordering := ResolveSort(sortKey)

	// Concurrent aggregates over the same matching set
	var total int
	var priceRange PriceRange

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		total, err = service.repo.Count(groupCtx, filter)
		return err
	})
	group.Go(func() error {
		var err error
		priceRange, err = service.repo.PriceRange(groupCtx, filter)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Page window clamped against the observed total
	pages := pagination.Compute(total, page.Page, page.Limit)

	cars, err := service.repo.List(ctx, filter, ordering, pages.Limit, pages.Skip)
	if err != nil {
		return nil, err
	}
	if cars == nil {
		cars = []*Car{}
	}

	return &ListingResult{
		Cars:       cars,
		Pages:      pages,
		PriceRange: priceRange,
		Sort:       sortKey,
		Filter:     filter,
	}, nil
}

/*
Detail retrieves a car by slug together with its similar-listings rail,
and records the page view.

Description: The view counter bump is fire-and-forget: it runs on a detached
context in a goroutine, and a failure is logged rather than surfaced, so an
analytics hiccup never breaks a detail page.

Parameters:
  - context: context.Context
  - carSlug: string (SEO identifier from the URL)

Returns:
  - *DetailResult: The car and up to four related listings
  - error: ErrNotFound if the slug does not resolve
*/
func (service *Service) Detail(context context.Context, carSlug string) (*DetailResult, error) {
	car, err := service.repo.FindBySlug(context, carSlug)
	if err != nil {
		return nil, err
	}

	related, err := service.repo.Related(context, car, RelatedLimit)
	if err != nil {
		return nil, err
	}
	if related == nil {
		related = []*Car{}
	}

	service.IncrementViews(car.ID)

	return &DetailResult{Car: car, Related: related}, nil
}

// GetBySlug fetches a single listing by its SEO identifier.
func (service *Service) GetBySlug(context context.Context, carSlug string) (*Car, error) {
	return service.repo.FindBySlug(context, carSlug)
}

// IncrementViews bumps the view counter asynchronously. Failures are
// logged and swallowed.
func (service *Service) IncrementViews(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), viewsTimeout)
		defer cancel()

		if err := service.repo.IncrementViews(ctx, id); err != nil {
			service.logger.Warn("view_increment_failed",
				slog.String("car_id", id),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Related returns up to [RelatedLimit] listings similar to the given car.
func (service *Service) Related(context context.Context, car *Car) ([]*Car, error) {
	return service.repo.Related(context, car, RelatedLimit)
}

// # Facets & Aggregates

/*
FacetValues returns the distinct values of every filterable attribute.

Description: Facet extraction scans the whole inventory, so the result is
cached in Redis under a TTL. A stale sidebar for the cache window is
accepted; readers fall through to the repository when Redis is absent or
the cached payload cannot be decoded.

Parameters:
  - context: context.Context

Returns:
  - FacetValues: Sorted distinct values per attribute
  - error: Repository failures (cache failures only degrade)
*/
func (service *Service) FacetValues(context context.Context) (FacetValues, error) {
	var cached FacetValues
	if service.readCached(context, constants.RedisPrefixFacets, &cached) {
		return cached, nil
	}

	facets, err := service.repo.DistinctFacets(context)
	if err != nil {
		return FacetValues{}, err
	}

	service.writeCached(context, constants.RedisPrefixFacets, facets)
	return facets, nil
}

// FacetCounts returns per-value listing counts scoped to the given query
// parameters. Not cached: counts are shown against an active filter.
func (service *Service) FacetCounts(context context.Context, params url.Values) (FacetCounts, error) {
	return service.repo.FacetCounts(context, BuildFilter(params))
}

// Stats returns fleet-wide aggregates, cached under the same TTL as facets.
func (service *Service) Stats(context context.Context) (Stats, error) {
	var cached Stats
	if service.readCached(context, constants.RedisPrefixStats, &cached) {
		return cached, nil
	}

	stats, err := service.repo.Stats(context)
	if err != nil {
		return Stats{}, err
	}

	service.writeCached(context, constants.RedisPrefixStats, stats)
	return stats, nil
}

// readCached loads and decodes a Redis JSON value. Any failure reads as a miss.
func (service *Service) readCached(context context.Context, key string, target any) bool {
	if service.cache == nil {
		return false
	}

	payload, err := service.cache.Get(context, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, target) == nil
}

// writeCached stores a JSON value with the facet TTL. Failures are logged only.
func (service *Service) writeCached(context context.Context, key string, value any) {
	if service.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := service.cache.Set(context, key, payload, service.facetTTL).Err(); err != nil {
		service.logger.Warn("facet_cache_write_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// # Inventory Management

/*
CreateCar initialises a new listing in the inventory.

Description: Performs deep business validation on the listing attributes,
generates a stable UUID v7 identity, and derives the display title and
SEO slug from make, model, and year before persisting.

Parameters:
  - context: context.Context
  - car: *Car (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateCar(context context.Context, car *Car) error {
	if err := validateCar(car, true); err != nil {
		return err
	}

	if car.ID == "" {
		car.ID = uuid.New()
	}
	if car.Status == "" {
		car.Status = StatusAvailable
	}

	// Derived identity fields
	car.Slug = slug.ForCar(car.Make, car.Model, car.Year)
	car.Title = displayTitle(car.Make, car.Model, car.Year)

	if err := service.repo.Create(context, car); err != nil {
		return err
	}

	service.invalidateAggregates(context)

	service.logger.Info("car_created",
		slog.String("car_id", car.ID),
		slog.String("slug", car.Slug),
	)

	return nil
}

/*
UpdateCar applies modifications to an existing listing.

Description: Supports partial updates; populated fields overwrite existing
values. When make, model, or year change, the slug and display title are
recomputed so the listing URL always reflects the current identity.

Parameters:
  - context: context.Context
  - car: *Car (Target ID and updated attributes)

Returns:
  - *Car: The full listing as stored after the update
  - error: Validation or persistence errors, ErrNotFound for unknown IDs
*/
func (service *Service) UpdateCar(context context.Context, car *Car) (*Car, error) {
	if err := validateCar(car, false); err != nil {
		return nil, err
	}

	// Slug recompute on identity change requires the stored record
	existing, err := service.repo.FindByID(context, car.ID)
	if err != nil {
		return nil, err
	}

	newMake, newModel, newYear := existing.Make, existing.Model, existing.Year
	if car.Make != "" {
		newMake = car.Make
	}
	if car.Model != "" {
		newModel = car.Model
	}
	if car.Year != 0 {
		newYear = car.Year
	}

	if newMake != existing.Make || newModel != existing.Model || newYear != existing.Year {
		car.Slug = slug.ForCar(newMake, newModel, newYear)
		car.Title = displayTitle(newMake, newModel, newYear)
	}

	if err := service.repo.Update(context, car); err != nil {
		return nil, err
	}

	service.invalidateAggregates(context)

	service.logger.Info("car_updated", slog.String("car_id", car.ID))

	// Re-fetch so the caller sees the merged record, not the partial patch
	return service.repo.FindByID(context, car.ID)
}

// invalidateAggregates drops the cached facet and stats payloads after a write.
func (service *Service) invalidateAggregates(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Del(context, constants.RedisPrefixFacets, constants.RedisPrefixStats).Err(); err != nil {
		service.logger.Warn("aggregate_cache_invalidation_failed", slog.String("error", err.Error()))
	}
}

// # Validation

// validateCar enforces the listing schema. On create every core attribute
// is required; on update only populated fields are checked.
func validateCar(car *Car, creating bool) error {
	validator := &validate.Validator{}

	if creating {
		validator.Required(FieldMake, car.Make).MaxLen(FieldMake, car.Make, 100)
		validator.Required(FieldModel, car.Model).MaxLen(FieldModel, car.Model, 100)
		validator.Required(FieldColor, car.Color)
		validator.Required(FieldDescription, car.Description)
		validator.Range(FieldYear, car.Year, 1900, time.Now().Year()+1)
		validator.Range(FieldSeats, car.Seats, 1, 20)
		validator.Positive(FieldPrice, car.Price)
		validator.Custom(FieldPrice, car.Price == 0, "This field is required")
		validator.NotEmpty(FieldImages, car.Images)
		validator.NotEmpty(FieldFeatures, car.Features)
		validator.Required(FieldDealerID, car.Dealer.ID)
	} else {
		if car.Make != "" {
			validator.MaxLen(FieldMake, car.Make, 100)
		}
		if car.Model != "" {
			validator.MaxLen(FieldModel, car.Model, 100)
		}
		if car.Year != 0 {
			validator.Range(FieldYear, car.Year, 1900, time.Now().Year()+1)
		}
		if car.Seats != 0 {
			validator.Range(FieldSeats, car.Seats, 1, 20)
		}
		validator.Positive(FieldPrice, car.Price)
	}

	if car.Tag != "" {
		validator.OneOf(FieldTag, string(car.Tag),
			string(TagNew), string(TagUsed), string(TagFeatured),
			string(TagElectric), string(TagSupercar), string(TagSport),
		)
	}
	if car.Status != "" {
		validator.OneOf(FieldStatus, string(car.Status),
			string(StatusAvailable), string(StatusSold),
			string(StatusPending), string(StatusReserved),
		)
	}
	if car.Transmission != "" {
		validator.OneOf(FieldTransmission, string(car.Transmission),
			string(TransmissionAutomatic), string(TransmissionManual),
			string(TransmissionCVT), string(TransmissionDCT),
		)
	}
	if car.FuelType != "" {
		validator.OneOf(FieldFuelType, string(car.FuelType),
			string(FuelGasoline), string(FuelDiesel), string(FuelElectric),
			string(FuelHybrid), string(FuelPlugIn),
		)
	}
	if car.DriveType != "" {
		validator.OneOf(FieldDriveType, string(car.DriveType),
			string(DriveFWD), string(DriveRWD), string(DriveAWD), string(DriveFourByFour),
		)
	}

	return validator.Err()
}
