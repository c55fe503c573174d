// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry

import (
	"context"
	"sync"
	"time"

	"github.com/autovault/autovault/internal/platform/apperr"
)

// MemoryRepository is a process-local [Repository] used by tests and
// database-less local development.
type MemoryRepository struct {
	mu        sync.RWMutex
	inquiries []*Inquiry
}

// NewMemoryRepository constructs an empty in-memory inquiry store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create implements [Repository].
func (store *MemoryRepository) Create(_ context.Context, inquiry *Inquiry) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now().UTC()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	store.inquiries = append(store.inquiries, inquiry)

	return nil
}

// FindByID implements [Repository].
func (store *MemoryRepository) FindByID(_ context.Context, id string) (*Inquiry, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, inquiry := range store.inquiries {
		if inquiry.ID == id {
			return inquiry, nil
		}
	}
	return nil, apperr.NotFound("inquiry")
}

// ListByCar implements [Repository].
func (store *MemoryRepository) ListByCar(_ context.Context, carID string) ([]*Inquiry, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	var matched []*Inquiry
	// Newest first: the slice is append-ordered, walk it backwards
	for i := len(store.inquiries) - 1; i >= 0; i-- {
		if store.inquiries[i].CarID == carID {
			matched = append(matched, store.inquiries[i])
		}
	}
	return matched, nil
}

// UpdateStatus implements [Repository].
func (store *MemoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, inquiry := range store.inquiries {
		if inquiry.ID == id {
			inquiry.Status = status
			inquiry.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return apperr.NotFound("inquiry")
}
