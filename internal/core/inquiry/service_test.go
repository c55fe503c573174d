// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/internal/core/car"
	"github.com/autovault/autovault/internal/core/dealer"
	"github.com/autovault/autovault/internal/core/inquiry"
	"github.com/autovault/autovault/internal/platform/apperr"
	"github.com/autovault/autovault/internal/platform/mailer"
)

// # Test Doubles

// stubMailer records sends on channels so tests can await the async
// notification path. A non-nil err makes every send fail.
type stubMailer struct {
	err           error
	confirmations chan mailer.InquiryConfirmation
	notifications chan mailer.InquiryNotification
}

func newStubMailer(err error) *stubMailer {
	return &stubMailer{
		err:           err,
		confirmations: make(chan mailer.InquiryConfirmation, 1),
		notifications: make(chan mailer.InquiryNotification, 1),
	}
}

func (m *stubMailer) SendInquiryConfirmation(_ context.Context, payload mailer.InquiryConfirmation) error {
	m.confirmations <- payload
	return m.err
}

func (m *stubMailer) SendInquiryNotification(_ context.Context, payload mailer.InquiryNotification) error {
	m.notifications <- payload
	return m.err
}

// # Fixtures

func testListing() *car.Car {
	return &car.Car{
		ID:     "car-1",
		Slug:   "bmw-m4-2024",
		Title:  "BMW M4 2024",
		Make:   "BMW",
		Status: car.StatusAvailable,
		Dealer: car.DealerRef{ID: "dealer-1", Name: "Summit Motors"},
	}
}

func newTestService(mail mailer.Mailer) (*inquiry.Service, *inquiry.MemoryRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := inquiry.NewMemoryRepository()

	cars := car.NewService(car.NewMemoryRepository(testListing()), nil, logger, time.Minute)
	dealers := dealer.NewService(dealer.NewMemoryRepository(&dealer.Dealer{
		ID:    "dealer-1",
		Name:  "Summit Motors",
		Email: "sales@summitmotors.example",
	}), logger)

	return inquiry.NewService(store, cars, dealers, mail, logger), store
}

func validSubmission() *inquiry.Inquiry {
	return &inquiry.Inquiry{
		Name:    "Dana Field",
		Email:   "dana@example.com",
		Phone:   "+1 (555) 010-2030",
		Message: "Is this car still available for a test drive?",
	}
}

// awaitSend fails the test if the channel stays silent.
func awaitSend[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case payload := <-ch:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never sent")
		panic("unreachable")
	}
}

// # Tests

/*
TestService_Submit verifies intake persistence, denormalization, and the
customer/dealer notification payloads.
*/
func TestService_Submit(t *testing.T) {
	mail := newStubMailer(nil)
	service, store := newTestService(mail)

	submission := validSubmission()
	require.NoError(t, service.Submit(context.Background(), "bmw-m4-2024", submission))

	// 1. Record persisted with denormalized listing identity
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, "car-1", submission.CarID)
	assert.Equal(t, "BMW M4 2024", submission.CarName)
	assert.Equal(t, inquiry.StatusNew, submission.Status)

	persisted, err := store.FindByID(context.Background(), submission.ID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", persisted.Email)

	// 2. Customer confirmation addressed to the submitter
	confirmation := awaitSend(t, mail.confirmations)
	assert.Equal(t, "dana@example.com", confirmation.To)
	assert.Equal(t, "BMW M4 2024", confirmation.CarName)

	// 3. Dealer alert addressed to the owning dealership
	notification := awaitSend(t, mail.notifications)
	assert.Equal(t, "sales@summitmotors.example", notification.To)
	assert.Equal(t, submission.ID, notification.InquiryID)
	assert.Equal(t, "+1 (555) 010-2030", notification.CustomerPhone)
}

/*
TestService_Submit_MailFailureSwallowed verifies that a notification outage
never fails an already-persisted submission.
*/
func TestService_Submit_MailFailureSwallowed(t *testing.T) {
	mail := newStubMailer(errors.New("smtp relay unreachable"))
	service, store := newTestService(mail)

	submission := validSubmission()

	// 1. Submission succeeds despite the failing transport
	require.NoError(t, service.Submit(context.Background(), "bmw-m4-2024", submission))

	// 2. Both sends were attempted
	awaitSend(t, mail.confirmations)
	awaitSend(t, mail.notifications)

	// 3. The record survived
	_, err := store.FindByID(context.Background(), submission.ID)
	assert.NoError(t, err)
}

/*
TestService_Submit_Validation verifies field-level rejection before any
persistence or notification happens.
*/
func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*inquiry.Inquiry)
		field  string
	}{
		{"missing_name", func(i *inquiry.Inquiry) { i.Name = "" }, inquiry.FieldName},
		{"bad_email", func(i *inquiry.Inquiry) { i.Email = "not-an-email" }, inquiry.FieldEmail},
		{"bad_phone", func(i *inquiry.Inquiry) { i.Phone = "12" }, inquiry.FieldPhone},
		{"missing_message", func(i *inquiry.Inquiry) { i.Message = "" }, inquiry.FieldMessage},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mail := newStubMailer(nil)
			service, _ := newTestService(mail)

			submission := validSubmission()
			testCase.mutate(submission)

			err := service.Submit(context.Background(), "bmw-m4-2024", submission)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, testCase.field)

			// Nothing reached the mail transport
			assert.Empty(t, mail.confirmations)
		})
	}
}

/*
TestService_Submit_UnknownSlug verifies the typed not-found for listings
that do not exist.
*/
func TestService_Submit_UnknownSlug(t *testing.T) {
	service, _ := newTestService(newStubMailer(nil))

	err := service.Submit(context.Background(), "no-such-listing", validSubmission())
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_UpdateStatus verifies workflow transitions and status
vocabulary enforcement.
*/
func TestService_UpdateStatus(t *testing.T) {
	service, store := newTestService(newStubMailer(nil))

	submission := validSubmission()
	require.NoError(t, service.Submit(context.Background(), "bmw-m4-2024", submission))

	// 1. Valid transition applies
	require.NoError(t, service.UpdateStatus(context.Background(), submission.ID, inquiry.StatusResponded))
	current, err := store.FindByID(context.Background(), submission.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.StatusResponded, current.Status)

	// 2. Unknown status is rejected
	err = service.UpdateStatus(context.Background(), submission.ID, inquiry.Status("Archived"))
	require.Error(t, err)

	// 3. Unknown inquiry yields not-found
	err = service.UpdateStatus(context.Background(), "ghost", inquiry.StatusClosed)
	assert.True(t, apperr.IsNotFound(err))
}
