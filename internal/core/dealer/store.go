// Copyright (c) 2026 AutoVault. All rights reserved.

package dealer

import "context"

// # Dealer Data Access

// Repository defines the data access contract for the dealer domain.
type Repository interface {

	/*
		List returns every dealership, ordered by name.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Dealer: All dealer records
		  - error: Storage retrieval failures
	*/
	List(context context.Context) ([]*Dealer, error)

	/*
		FindByID returns the dealer with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Dealer: The hydrated dealer record
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Dealer, error)
}
