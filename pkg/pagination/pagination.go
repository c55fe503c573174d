// Copyright (c) 2026 AutoVault. All rights reserved.

// Package pagination provides shared types and helpers for list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"

	"github.com/autovault/autovault/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// ListingLimit is the page size used by car listing pages.
	ListingLimit = 12
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Params.Page] and [Params.Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Pages is the full pagination state computed for one request.
//
// CurrentPage is always clamped into [1, TotalPages] (or 1 when there are no
// pages at all), so Skip is never negative.
type Pages struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
	Skip        int  `json:"skip"`
}

// Compute derives the full pagination state from a total item count, the
// requested page, and the page size.
//
// # Clamping
//
// Zero items yields zero total pages and a current page of 1. A requested
// page beyond the last page clamps to the last page; pages below 1 clamp
// to 1. Skip is therefore never negative.
func Compute(total, page, limit int) Pages {
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := (total + limit - 1) / limit

	currentPage := page
	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}
	if totalPages == 0 {
		currentPage = 1
	}

	pages := Pages{
		Total:       total,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Limit:       limit,
		HasNext:     currentPage < totalPages,
		HasPrev:     currentPage > 1,
		Skip:        (currentPage - 1) * limit,
	}

	if pages.HasNext {
		next := currentPage + 1
		pages.NextPage = &next
	}
	if pages.HasPrev {
		prev := currentPage - 1
		pages.PrevPage = &prev
	}

	return pages
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates TotalPages and HasMore from the total count.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    total > page*limit,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], the provided default limit, or [MaxLimit].
func FromRequest(r *http.Request, defaultLimit int) Params {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", defaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	return convert.ToIntD(r.URL.Query().Get(key), defaultVal)
}
