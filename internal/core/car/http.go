// Copyright (c) 2026 AutoVault. All rights reserved.

/*
HTTP interface for inventory discovery and management.

# Routing Strategy

  - Public (v1): Discovery endpoints for the storefront (listing, search,
    facets, detail view-models).
  - Management (v1): Mutative endpoints used by the dealership back office
    (POST, PATCH).

The handler translates between the web/JSON layer and the internal domain
[Service].
*/

package car

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autovault/autovault/internal/platform/cache"
	"github.com/autovault/autovault/internal/platform/constants"
	"github.com/autovault/autovault/internal/platform/ctxutil"
	requestutil "github.com/autovault/autovault/internal/platform/request"
	"github.com/autovault/autovault/internal/platform/respond"
	"github.com/autovault/autovault/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for inventory discovery and management.
type Handler struct {
	service   *Service
	pageCache *cache.Cache // nil disables response caching and invalidation
	siteURL   string
}

// NewHandler constructs a new car [Handler].
func NewHandler(service *Service, pageCache *cache.Cache, siteURL string) *Handler {
	return &Handler{
		service:   service,
		pageCache: pageCache,
		siteURL:   siteURL,
	}
}

// Routes returns a [chi.Router] configured with the car domain's endpoints.
//
// cached is the response-cache middleware applied to the public discovery
// group; pass nil to serve everything uncached. submitInquiry handles the
// listing-scoped inquiry form (POST /{slug}/inquiries); it lives here
// because chi allows only one mount per path prefix.
func (handler *Handler) Routes(cached func(http.Handler) http.Handler, submitInquiry http.HandlerFunc) chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints (response-cached)
	router.Group(func(public chi.Router) {
		if cached != nil {
			public.Use(cached)
		}

		public.Get("/", handler.listCars)
		public.Get("/search", handler.searchCars)
		public.Get("/facets", handler.facetValues)
		public.Get("/facets/counts", handler.facetCounts)
		public.Get("/{slug}", handler.getCar)
	})

	// ## Uncached Reads
	router.Get("/stats", handler.fleetStats)

	// ## Listing Inquiries
	if submitInquiry != nil {
		router.Post("/{slug}/inquiries", submitInquiry)
	}

	// ## Inventory Management
	router.Post("/", handler.createCar)
	router.Patch("/{id}", handler.updateCar)

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/cars.

Description: Retrieves a paginated listing page view-model. Supports
filtering by make, model, color, seats, and price range, plus sorting.

Request:
  - make, model, color: []string (Repeated or comma-separated)
  - seats: []int
  - minPrice, maxPrice: float
  - status: string (Available, Sold, Pending, Reserved)
  - sort: string (price-asc, price-desc, mileage-asc, mileage-desc, newest, oldest, views, favorites)
  - search: string (Free text)
  - limit: int
  - page: int

Response:
  - 200: ListingPage: Listing view-model with pagination metadata
*/
func (handler *Handler) listCars(writer http.ResponseWriter, request *http.Request) {
	// Pagination extraction using pkg/pagination
	pageParams := pagination.FromRequest(request, pagination.ListingLimit)

	// Domain Logic Execution
	listing, err := handler.service.Listing(request.Context(), request.URL.Query(), pageParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// View-model assembly
	page := ListingView(listing, handler.siteURL, request.URL.Path)

	// Structured API Response
	respond.Paginated(writer, page, pagination.NewMeta(listing.Pages.CurrentPage, listing.Pages.Limit, listing.Pages.Total))
}

/*
GET /api/v1/cars/search.

Description: Full-inventory search. Accepts the same filter parameters as
the listing endpoint but does not default the status to Available, and
returns the flat search-result shape.

Request:
  - search: string (Free text over make, model, description, dealer name)
  - Plus all listing filter parameters

Response:
  - 200: SearchResult: Matches with totalCars/hasMore pagination fields
*/
func (handler *Handler) searchCars(writer http.ResponseWriter, request *http.Request) {
	// Pagination extraction using pkg/pagination
	pageParams := pagination.FromRequest(request, pagination.ListingLimit)

	// Domain Logic Execution
	result, err := handler.service.Search(request.Context(), request.URL.Query(), pageParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, result)
}

/*
GET /api/v1/cars/{slug}.

Description: Retrieves the detail page view-model for a car, including the
similar-cars rail and SEO metadata. Viewing a detail page bumps the view
counter asynchronously.

Request:
  - slug: string (SEO identifier, e.g. "bmw-m4-2024")

Response:
  - 200: DetailPage: Detail view-model
  - 404: 404: ErrNotFound: Unknown slug
*/
func (handler *Handler) getCar(writer http.ResponseWriter, request *http.Request) {
	// Extract slug from URL
	carSlug := requestutil.Param(request, "slug")

	// Domain Logic Execution
	detail, err := handler.service.Detail(request.Context(), carSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// View-model assembly
	page := DetailView(detail, handler.siteURL, request.URL.Path)

	// Structured API Response
	respond.OK(writer, page)
}

/*
GET /api/v1/cars/facets.

Description: Returns the distinct values of every filterable attribute for
the storefront filter sidebar. Served from a Redis-backed cache with a TTL;
brief staleness after inventory changes is accepted.

Response:
  - 200: FacetValues: Sorted distinct values per attribute
*/
func (handler *Handler) facetValues(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.FacetValues(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, facets)
}

/*
GET /api/v1/cars/facets/counts.

Description: Returns per-value listing counts scoped to the active filter,
so the sidebar can show how many results each choice would yield.

Request:
  - Same filter parameters as the listing endpoint

Response:
  - 200: FacetCounts: Value-to-count maps per attribute
*/
func (handler *Handler) facetCounts(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.FacetCounts(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counts)
}

/*
GET /api/v1/cars/stats.

Description: Returns fleet-wide aggregates for the dealership dashboard.

Response:
  - 200: Stats: Totals, averages, view sums
*/
func (handler *Handler) fleetStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

// # Request Payloads

// carRequest defines the inbound JSON schema for listing creation and update.
type carRequest struct {
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	Tag          Tag          `json:"tag"`
	Images       []string     `json:"images"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	DriveType    DriveType    `json:"drive_type"`
	Color        string       `json:"color"`
	Seats        int          `json:"seats"`
	Features     []string     `json:"features"`
	Engine       string       `json:"engine"`
	Description  string       `json:"description"`
	Video        string       `json:"video"`
	MapURL       string       `json:"map_url"`
	DealerID     string       `json:"dealer_id"`
	Status       Status       `json:"status"`
}

// toDomain maps the DTO onto a domain entity.
func (input carRequest) toDomain() *Car {
	return &Car{
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		Price:        input.Price,
		Mileage:      input.Mileage,
		Tag:          input.Tag,
		Images:       input.Images,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		DriveType:    input.DriveType,
		Color:        input.Color,
		Seats:        input.Seats,
		Features:     input.Features,
		Engine:       input.Engine,
		Description:  input.Description,
		Video:        input.Video,
		MapURL:       input.MapURL,
		Dealer:       DealerRef{ID: input.DealerID},
		Status:       input.Status,
	}
}

// # Mutation Endpoints

/*
POST /api/v1/cars.

Description: Creates a new listing. The slug and display title are derived
from make, model, and year. Cached listing pages are invalidated so the new
stock appears immediately.

Request (Body):
  - carRequest: JSON object

Response:
  - 201: Car: Created listing
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: 409: ErrConflict: Duplicate slug
*/
func (handler *Handler) createCar(writer http.ResponseWriter, request *http.Request) {
	var input carRequest

	// Strict JSON decoding
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Map DTO to Domain Entity
	car := input.toDomain()

	// Domain Logic Execution
	if err := handler.service.CreateCar(request.Context(), car); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Cached page invalidation
	handler.invalidatePages(request)

	// Structured API Response
	respond.Created(writer, car)
}

/*
PATCH /api/v1/cars/{id}.

Description: Applies partial updates to an existing listing. Changing make,
model, or year recomputes the slug. Cached listing pages are invalidated.

Request:
  - id: string (UUID)
  - body: carRequest (Partial JSON)

Response:
  - 200: Car: Updated listing
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: 404: ErrNotFound: Car not found
*/
func (handler *Handler) updateCar(writer http.ResponseWriter, request *http.Request) {
	// Extract ID from URL
	carID := requestutil.Param(request, "id")

	// Strict JSON decoding
	var input carRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Map DTO to Domain Entity
	car := input.toDomain()
	car.ID = carID

	// Domain Logic Execution
	updated, err := handler.service.UpdateCar(request.Context(), car)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Cached page invalidation
	handler.invalidatePages(request)

	// Structured API Response
	respond.OK(writer, updated)
}

// invalidatePages drops every cached GET response after an inventory write.
func (handler *Handler) invalidatePages(request *http.Request) {
	if handler.pageCache == nil {
		return
	}

	if _, err := handler.pageCache.DeletePattern("^" + constants.ResponseCachePrefix); err != nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.Warn("page_cache_invalidation_failed", slog.String("error", err.Error()))
	}
}
