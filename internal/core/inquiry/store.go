// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry

import "context"

// # Inquiry Data Access

// Repository defines the data access contract for the inquiry domain.
type Repository interface {

	/*
		Create persists a new inquiry.

		Parameters:
		  - context: context.Context
		  - inquiry: *Inquiry (Validated submission)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, inquiry *Inquiry) error

	/*
		FindByID returns the inquiry with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Inquiry: The hydrated record
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Inquiry, error)

	/*
		ListByCar returns all inquiries for a listing, newest first.

		Parameters:
		  - context: context.Context
		  - carID: string (UUID)

		Returns:
		  - []*Inquiry: Matching records
		  - error: Storage failures
	*/
	ListByCar(context context.Context, carID string) ([]*Inquiry, error)

	/*
		UpdateStatus transitions an inquiry's workflow state.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - status: Status (Target state)

		Returns:
		  - error: ErrNotFound if missing, otherwise storage failures
	*/
	UpdateStatus(context context.Context, id string, status Status) error
}
