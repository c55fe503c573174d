// Copyright (c) 2026 AutoVault. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/pkg/pagination"
)

/*
TestCompute verifies clamping and derived metadata for representative inputs.
*/
func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		limit       int
		currentPage int
		totalPages  int
		hasNext     bool
		hasPrev     bool
		skip        int
	}{
		{"middle_page", 25, 2, 10, 2, 3, true, true, 10},
		{"last_page", 25, 3, 10, 3, 3, false, true, 20},
		{"page_beyond_last_clamps", 25, 9, 10, 3, 3, false, true, 20},
		{"page_below_first_clamps", 25, -4, 10, 1, 3, true, false, 0},
		{"empty_collection", 0, 5, 10, 1, 0, false, false, 0},
		{"exact_multiple", 24, 2, 12, 2, 2, false, true, 12},
		{"single_item", 1, 1, 12, 1, 1, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := pagination.Compute(tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.currentPage, pages.CurrentPage)
			assert.Equal(t, tt.totalPages, pages.TotalPages)
			assert.Equal(t, tt.hasNext, pages.HasNext)
			assert.Equal(t, tt.hasPrev, pages.HasPrev)
			assert.Equal(t, tt.skip, pages.Skip)
			assert.GreaterOrEqual(t, pages.Skip, 0)
			assert.Equal(t, (pages.CurrentPage-1)*tt.limit, pages.Skip)
		})
	}
}

/*
TestCompute_NextPrevPointers checks the nullable next/prev page numbers.
*/
func TestCompute_NextPrevPointers(t *testing.T) {
	pages := pagination.Compute(25, 2, 10)

	require.NotNil(t, pages.NextPage)
	require.NotNil(t, pages.PrevPage)
	assert.Equal(t, 3, *pages.NextPage)
	assert.Equal(t, 1, *pages.PrevPage)

	first := pagination.Compute(25, 1, 10)
	assert.Nil(t, first.PrevPage)
	require.NotNil(t, first.NextPage)

	last := pagination.Compute(25, 3, 10)
	assert.Nil(t, last.NextPage)
	require.NotNil(t, last.PrevPage)

	empty := pagination.Compute(0, 1, 10)
	assert.Nil(t, empty.NextPage)
	assert.Nil(t, empty.PrevPage)
}

/*
TestFromRequest parses and clamps page/limit query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		page  int
		limit int
	}{
		{"defaults", "/cars", 1, 12},
		{"explicit_values", "/cars?page=3&limit=24", 3, 24},
		{"invalid_page", "/cars?page=abc", 1, 12},
		{"negative_page", "/cars?page=-2", 1, 12},
		{"excessive_limit", "/cars?limit=5000", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request, pagination.ListingLimit)

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

/*
TestNewMeta covers the API envelope metadata shape.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 12, 25)

	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasMore)

	last := pagination.NewMeta(3, 12, 25)
	assert.False(t, last.HasMore)
}
