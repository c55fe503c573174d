// Copyright (c) 2026 AutoVault. All rights reserved.

package car_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/internal/core/car"
	"github.com/autovault/autovault/pkg/pointer"
)

/*
TestBuildFilter_Defaults verifies that an empty query imposes only the
Available status constraint.
*/
func TestBuildFilter_Defaults(t *testing.T) {
	filter := car.BuildFilter(url.Values{})

	assert.Equal(t, car.StatusAvailable, filter.Status)
	assert.Nil(t, filter.Makes)
	assert.Nil(t, filter.Models)
	assert.Nil(t, filter.Colors)
	assert.Nil(t, filter.Seats)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.False(t, filter.HasSearch())
}

/*
TestBuildFilter_MultiValue verifies that repeated parameters and
comma-separated lists both produce value sets.
*/
func TestBuildFilter_MultiValue(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		expected []string
	}{
		{
			name:     "repeated_params",
			rawQuery: "make=BMW&make=Audi",
			expected: []string{"BMW", "Audi"},
		},
		{
			name:     "comma_separated",
			rawQuery: "make=BMW,Audi",
			expected: []string{"BMW", "Audi"},
		},
		{
			name:     "single_value_singleton",
			rawQuery: "make=BMW",
			expected: []string{"BMW"},
		},
		{
			name:     "mixed_with_whitespace",
			rawQuery: "make=BMW,%20Audi&make=Porsche",
			expected: []string{"BMW", "Audi", "Porsche"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			params, err := url.ParseQuery(testCase.rawQuery)
			require.NoError(t, err)

			filter := car.BuildFilter(params)
			assert.Equal(t, testCase.expected, filter.Makes)
		})
	}
}

/*
TestBuildFilter_SeatsDropNonNumeric verifies the drop-and-continue policy
for malformed numeric entries.
*/
func TestBuildFilter_SeatsDropNonNumeric(t *testing.T) {
	params := url.Values{"seats": []string{"5", "banana", "7"}}

	filter := car.BuildFilter(params)

	assert.Equal(t, []int{5, 7}, filter.Seats)
}

/*
TestBuildFilter_PriceBounds verifies that the price bounds are independently
optional and malformed values are dropped silently.
*/
func TestBuildFilter_PriceBounds(t *testing.T) {
	tests := []struct {
		name        string
		params      url.Values
		expectedMin *float64
		expectedMax *float64
	}{
		{
			name:        "both_bounds",
			params:      url.Values{"minPrice": {"40000"}, "maxPrice": {"50000"}},
			expectedMin: pointer.To(40000.0),
			expectedMax: pointer.To(50000.0),
		},
		{
			name:        "min_only",
			params:      url.Values{"minPrice": {"10000"}},
			expectedMin: pointer.To(10000.0),
		},
		{
			name:        "malformed_min_dropped",
			params:      url.Values{"minPrice": {"cheap"}, "maxPrice": {"90000"}},
			expectedMax: pointer.To(90000.0),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			filter := car.BuildFilter(testCase.params)

			assert.Equal(t, testCase.expectedMin, filter.MinPrice)
			assert.Equal(t, testCase.expectedMax, filter.MaxPrice)
		})
	}
}

/*
TestBuildFilter_Deterministic verifies that identical inputs always produce
structurally equal filters.
*/
func TestBuildFilter_Deterministic(t *testing.T) {
	params, err := url.ParseQuery("make=BMW,Audi&seats=5&minPrice=1000&search=diesel%20wagon&color=Blue")
	require.NoError(t, err)

	first := car.BuildFilter(params)
	second := car.BuildFilter(params)

	assert.Equal(t, first, second)
}

/*
TestBuildFilter_StatusOverride verifies that an explicit status replaces
the Available default verbatim, even when it is not a known lifecycle value.
*/
func TestBuildFilter_StatusOverride(t *testing.T) {
	// 1. Explicit known status wins
	filter := car.BuildFilter(url.Values{"status": {"Sold"}})
	assert.Equal(t, car.StatusSold, filter.Status)

	// 2. Unknown status passes through and will match nothing
	filter = car.BuildFilter(url.Values{"status": {"sold"}})
	assert.Equal(t, car.Status("sold"), filter.Status)

	// 3. Whitespace-only status keeps the default
	filter = car.BuildFilter(url.Values{"status": {"  "}})
	assert.Equal(t, car.StatusAvailable, filter.Status)
}

/*
TestBuildSearchFilter_NoStatusDefault verifies that the search variant
reaches the full inventory unless a status is requested explicitly.
*/
func TestBuildSearchFilter_NoStatusDefault(t *testing.T) {
	// 1. No status parameter: no constraint
	filter := car.BuildSearchFilter(url.Values{"search": {"bmw"}})
	assert.Equal(t, car.Status(""), filter.Status)

	// 2. Explicit status still applies
	filter = car.BuildSearchFilter(url.Values{"status": {"Reserved"}})
	assert.Equal(t, car.StatusReserved, filter.Status)

	// 3. Unknown explicit status passes through verbatim
	filter = car.BuildSearchFilter(url.Values{"status": {"reserved"}})
	assert.Equal(t, car.Status("reserved"), filter.Status)
}

