// Copyright (c) 2026 AutoVault. All rights reserved.

package car

import (
	"net/url"
	"strings"

	"github.com/autovault/autovault/pkg/query"
)

// # Search & Filtering

// Filter holds the parameters for a filtered car list query.
//
// Construction is deterministic: the same url.Values always produce a
// structurally equal Filter, so the struct doubles as a cache key component.
type Filter struct {
	Makes    []string `json:"makes,omitempty"`
	Models   []string `json:"models,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	Seats    []int    `json:"seats,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Status   Status   `json:"status,omitempty"`
	Search   string   `json:"search,omitempty"` // Literal substring over make/model/description/dealer name
}

/*
BuildFilter translates raw query parameters into a [Filter].

Description: Implements the storefront's drop-and-continue parsing policy.
Multi-value attributes (make, model, color) accept repeated parameters or
comma-separated lists; a single value yields a singleton set and an absent
key imposes no constraint. Non-numeric seats entries and malformed price
bounds are silently dropped rather than rejecting the request. Status
defaults to Available so sold stock never leaks into public listings; an
explicit status is passed through verbatim, so an unrecognized value simply
matches nothing.

Parameters:
  - params: url.Values (Raw decoded query string)

Returns:
  - Filter: Normalised filter criteria
*/
func BuildFilter(params url.Values) Filter {
	filter := Filter{
		Makes:  query.Values(params, "make"),
		Models: query.Values(params, "model"),
		Colors: query.Values(params, "color"),
		Seats:  query.IntSlice(query.Values(params, "seats")),
		Search: strings.TrimSpace(params.Get("search")),
	}

	// Independent optional price bounds
	filter.MinPrice = query.Float(params, "minPrice")
	filter.MaxPrice = query.Float(params, "maxPrice")

	// Status defaults to Available; an explicit value passes through verbatim
	filter.Status = StatusAvailable
	if status := strings.TrimSpace(params.Get("status")); status != "" {
		filter.Status = Status(status)
	}

	return filter
}

/*
BuildSearchFilter translates query parameters for the search endpoint.

Description: Identical to [BuildFilter] except that an absent status parameter
imposes no status constraint, so search reaches the full inventory including
sold and reserved stock.

Parameters:
  - params: url.Values

Returns:
  - Filter: Normalised filter criteria without the Available default
*/
func BuildSearchFilter(params url.Values) Filter {
	filter := BuildFilter(params)

	if strings.TrimSpace(params.Get("status")) == "" {
		filter.Status = ""
	}

	return filter
}

// HasSearch reports whether free-text matching applies.
func (f Filter) HasSearch() bool {
	return f.Search != ""
}

// escapeLike escapes the SQL LIKE metacharacters so user-provided search
// text matches literally. The backslash is the escape character declared
// in the generated ILIKE clause.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(s)
}
