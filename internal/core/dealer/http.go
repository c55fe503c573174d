// Copyright (c) 2026 AutoVault. All rights reserved.

package dealer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/autovault/autovault/internal/platform/request"
	"github.com/autovault/autovault/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the dealer directory.
type Handler struct {
	service *Service
}

// NewHandler constructs a new dealer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the dealer endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listDealers)
	router.Get("/{id}", handler.getDealer)

	return router
}

/*
GET /api/v1/dealers.

Description: Lists every dealership, ordered by name.

Response:
  - 200: []Dealer: Dealer directory
*/
func (handler *Handler) listDealers(writer http.ResponseWriter, request *http.Request) {
	dealers, err := handler.service.ListDealers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dealers)
}

/*
GET /api/v1/dealers/{id}.

Description: Retrieves a single dealership profile.

Request:
  - id: string (UUID)

Response:
  - 200: Dealer: Success
  - 404: 404: ErrNotFound: Dealer not found
*/
func (handler *Handler) getDealer(writer http.ResponseWriter, request *http.Request) {
	dealerID := requestutil.Param(request, "id")

	dealer, err := handler.service.GetDealer(request.Context(), dealerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dealer)
}
