// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/autovault/autovault/internal/platform/request"
	"github.com/autovault/autovault/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for inquiry intake and follow-up.
type Handler struct {
	service *Service
}

// NewHandler constructs a new inquiry [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the CRM-side inquiry endpoints.
// The storefront submission endpoint lives under the car routes; see
// [Handler.SubmitForCar].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getInquiry)
	router.Patch("/{id}/status", handler.updateStatus)

	return router
}

// # Request Payloads

// submitRequest defines the inbound JSON schema for a storefront inquiry.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// # Endpoints

/*
POST /api/v1/cars/{slug}/inquiries.

Description: Submits a purchase inquiry for a listing. The response is
returned as soon as the record is committed; email notifications are
delivered best-effort in the background.

Request:
  - slug: string (Listing SEO identifier)
  - body: submitRequest

Response:
  - 201: Inquiry: Persisted inquiry record
  - 400: 400: ErrInvalidJSON/Validation: Invalid contact fields
  - 404: 404: ErrNotFound: Unknown listing slug
*/
func (handler *Handler) SubmitForCar(writer http.ResponseWriter, request *http.Request) {
	// Extract slug from URL
	carSlug := requestutil.Param(request, "slug")

	// Strict JSON decoding
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Map DTO to Domain Entity
	submission := &Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	// Domain Logic Execution
	if err := handler.service.Submit(request.Context(), carSlug, submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, submission)
}

/*
GET /api/v1/inquiries/{id}.

Description: Retrieves a single inquiry for the CRM detail view.

Request:
  - id: string (UUID)

Response:
  - 200: Inquiry: Success
  - 404: 404: ErrNotFound: Inquiry not found
*/
func (handler *Handler) getInquiry(writer http.ResponseWriter, request *http.Request) {
	inquiryID := requestutil.Param(request, "id")

	record, err := handler.service.GetInquiry(request.Context(), inquiryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
PATCH /api/v1/inquiries/{id}/status.

Description: Transitions an inquiry's follow-up state.

Request:
  - id: string (UUID)
  - body: { status: string (New, In Progress, Responded, Closed) }

Response:
  - 200: Message: Success
  - 400: 400: Validation: Unknown status value
  - 404: 404: ErrNotFound: Inquiry not found
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	inquiryID := requestutil.Param(request, "id")

	var input struct {
		Status Status `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), inquiryID, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Inquiry status updated"})
}
