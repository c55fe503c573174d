// Copyright (c) 2026 AutoVault. All rights reserved.

package dealer

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service exposes the dealer directory to the HTTP layer and to the
// inquiry notification path.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new dealer [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListDealers returns every dealership, ordered by name.
func (service *Service) ListDealers(context context.Context) ([]*Dealer, error) {
	return service.repo.List(context)
}

// GetDealer fetches a single dealership by ID.
func (service *Service) GetDealer(context context.Context, id string) (*Dealer, error) {
	return service.repo.FindByID(context, id)
}
