// Copyright (c) 2026 AutoVault. All rights reserved.

package dealer

import (
	"context"
	"sort"

	"github.com/autovault/autovault/internal/platform/apperr"
)

// MemoryRepository is a process-local [Repository] used by tests and
// database-less local development.
type MemoryRepository struct {
	dealers []*Dealer
}

// NewMemoryRepository constructs an in-memory store seeded with the given dealers.
func NewMemoryRepository(dealers ...*Dealer) *MemoryRepository {
	return &MemoryRepository{dealers: dealers}
}

// List implements [Repository].
func (store *MemoryRepository) List(_ context.Context) ([]*Dealer, error) {
	listed := make([]*Dealer, len(store.dealers))
	copy(listed, store.dealers)
	sort.Slice(listed, func(i, j int) bool { return listed[i].Name < listed[j].Name })
	return listed, nil
}

// FindByID implements [Repository].
func (store *MemoryRepository) FindByID(_ context.Context, id string) (*Dealer, error) {
	for _, dealer := range store.dealers {
		if dealer.ID == id {
			return dealer, nil
		}
	}
	return nil, apperr.NotFound("dealer")
}
