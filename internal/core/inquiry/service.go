// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry

import (
	"context"
	"log/slog"
	"time"

	"github.com/autovault/autovault/internal/core/car"
	"github.com/autovault/autovault/internal/core/dealer"
	"github.com/autovault/autovault/internal/platform/mailer"
	"github.com/autovault/autovault/internal/platform/validate"
	"github.com/autovault/autovault/pkg/uuid"
)

// # Service Layer

// notifyTimeout bounds the best-effort email notification round-trip.
const notifyTimeout = 15 * time.Second

// CarDirectory is the listing lookup the inquiry pipeline needs.
type CarDirectory interface {
	GetBySlug(context context.Context, slug string) (*car.Car, error)
}

// DealerDirectory resolves the dealer contact for notifications.
type DealerDirectory interface {
	GetDealer(context context.Context, id string) (*dealer.Dealer, error)
}

// Service orchestrates inquiry intake and the follow-up workflow.
type Service struct {
	repo    Repository
	cars    CarDirectory
	dealers DealerDirectory
	mail    mailer.Mailer
	logger  *slog.Logger
}

// NewService constructs a new inquiry [Service].
func NewService(repo Repository, cars CarDirectory, dealers DealerDirectory, mail mailer.Mailer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		cars:    cars,
		dealers: dealers,
		mail:    mail,
		logger:  logger,
	}
}

// # Intake

/*
Submit validates and persists a storefront inquiry for a listing.

Description: The listing is resolved by slug and its display title is
denormalized onto the record, so the CRM view is stable even if the listing
is later edited. After the record is committed, customer and dealer email
notifications fire on a detached goroutine: a notification failure is logged
and swallowed, never rolled back into the submission response.

Parameters:
  - context: context.Context
  - carSlug: string (Listing identifier from the URL)
  - inquiry: *Inquiry (Customer contact fields and message)

Returns:
  - error: Validation errors, ErrNotFound for unknown slugs, or persistence failures
*/
func (service *Service) Submit(context context.Context, carSlug string, inquiry *Inquiry) error {

	// Contact field validation
	validator := &validate.Validator{}
	validator.Required(FieldName, inquiry.Name).MaxLen(FieldName, inquiry.Name, 100)
	validator.Required(FieldEmail, inquiry.Email).Email(FieldEmail, inquiry.Email)
	validator.Required(FieldPhone, inquiry.Phone).Phone(FieldPhone, inquiry.Phone)
	validator.Required(FieldMessage, inquiry.Message).MaxLen(FieldMessage, inquiry.Message, 2000)
	if err := validator.Err(); err != nil {
		return err
	}

	// Listing resolution
	listing, err := service.cars.GetBySlug(context, carSlug)
	if err != nil {
		return err
	}

	// Identity and denormalized display fields
	inquiry.ID = uuid.New()
	inquiry.CarID = listing.ID
	inquiry.CarName = listing.Title
	inquiry.Status = StatusNew

	if err := service.repo.Create(context, inquiry); err != nil {
		return err
	}

	service.logger.Info("inquiry_submitted",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("car_id", listing.ID),
	)

	// Best-effort notifications on a detached context
	go service.notify(*inquiry, listing)

	return nil
}

// notify sends the customer confirmation and dealer alert. Both sends are
// best-effort; failures are logged only.
func (service *Service) notify(inquiry Inquiry, listing *car.Car) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := service.mail.SendInquiryConfirmation(ctx, mailer.InquiryConfirmation{
		To:           inquiry.Email,
		CustomerName: inquiry.Name,
		CarName:      inquiry.CarName,
		Message:      inquiry.Message,
	}); err != nil {
		service.logger.Warn("inquiry_confirmation_failed",
			slog.String("inquiry_id", inquiry.ID),
			slog.String("error", err.Error()),
		)
	}

	contact, err := service.dealers.GetDealer(ctx, listing.Dealer.ID)
	if err != nil {
		service.logger.Warn("inquiry_dealer_lookup_failed",
			slog.String("inquiry_id", inquiry.ID),
			slog.String("dealer_id", listing.Dealer.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := service.mail.SendInquiryNotification(ctx, mailer.InquiryNotification{
		To:            contact.Email,
		InquiryID:     inquiry.ID,
		CustomerName:  inquiry.Name,
		CustomerEmail: inquiry.Email,
		CustomerPhone: inquiry.Phone,
		CarName:       inquiry.CarName,
		Message:       inquiry.Message,
	}); err != nil {
		service.logger.Warn("inquiry_notification_failed",
			slog.String("inquiry_id", inquiry.ID),
			slog.String("error", err.Error()),
		)
	}
}

// # Workflow

// GetInquiry fetches a single inquiry by ID.
func (service *Service) GetInquiry(context context.Context, id string) (*Inquiry, error) {
	return service.repo.FindByID(context, id)
}

// ListByCar returns all inquiries for a listing, newest first.
func (service *Service) ListByCar(context context.Context, carID string) ([]*Inquiry, error) {
	return service.repo.ListByCar(context, carID)
}

// UpdateStatus transitions an inquiry's workflow state.
func (service *Service) UpdateStatus(context context.Context, id string, status Status) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status),
		string(StatusNew), string(StatusInProgress),
		string(StatusResponded), string(StatusClosed),
	)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("inquiry_status_updated",
		slog.String("inquiry_id", id),
		slog.String("status", string(status)),
	)

	return nil
}
