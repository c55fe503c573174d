// Copyright (c) 2026 AutoVault. All rights reserved.

/*
Package inquiry manages customer purchase inquiries.

An inquiry links a prospective buyer to a specific listing. The car's display
name is denormalized onto the record so the CRM view survives listing edits
and deletions.

Core Responsibility:

  - Intake: Validates and persists storefront contact-form submissions.
  - Notification: Triggers best-effort customer and dealer email alerts.
  - Workflow: Tracks the follow-up status from New through Closed.
*/
package inquiry

import "time"

// # Domain Enums

// Status represents the follow-up state of an inquiry.
type Status string

const (
	// StatusNew indicates the inquiry has not been reviewed yet.
	StatusNew Status = "New"

	// StatusInProgress indicates a sales agent is handling the inquiry.
	StatusInProgress Status = "In Progress"

	// StatusResponded indicates the customer has been contacted.
	StatusResponded Status = "Responded"

	// StatusClosed indicates the inquiry needs no further action.
	StatusClosed Status = "Closed"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResponded, StatusClosed:
		return true
	}
	return false
}

// # Core Entities

// Inquiry is a customer's purchase interest in a specific listing.
type Inquiry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	CarID   string `json:"car_id"`
	CarName string `json:"car_name"` // Denormalized display title at submission time
	Status  Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
	FieldCarID   = "car_id"
	FieldStatus  = "status"
)
