// Copyright (c) 2026 AutoVault. All rights reserved.

// Package dealer defines the dealership entities backing each listing's
// dealer reference and the inquiry notification path.
package dealer

import "time"

// Dealer represents a dealership participating in the marketplace.
type Dealer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field identifiers for validation and query mapping.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLocation = "location"
)
