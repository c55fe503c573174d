// Copyright (c) 2026 AutoVault. All rights reserved.

package car_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/internal/core/car"
)

/*
TestResolveSort_KnownKeys verifies the full public sort vocabulary.
*/
func TestResolveSort_KnownKeys(t *testing.T) {
	tests := []struct {
		key        string
		column     string
		descending bool
	}{
		{car.SortPriceAsc, car.FieldPrice, false},
		{car.SortPriceDesc, car.FieldPrice, true},
		{car.SortMileageAsc, car.FieldMileage, false},
		{car.SortMileageDesc, car.FieldMileage, true},
		{car.SortNewest, "created_at", true},
		{car.SortOldest, "created_at", false},
		{car.SortViews, "views", true},
		{car.SortFavorites, "favorites", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.key, func(t *testing.T) {
			ordering := car.ResolveSort(testCase.key)

			assert.Equal(t, testCase.column, ordering.Column)
			assert.Equal(t, testCase.descending, ordering.Descending)
		})
	}
}

/*
TestResolveSort_Totality verifies that unknown or malformed keys always
resolve to newest-first rather than failing.
*/
func TestResolveSort_Totality(t *testing.T) {
	newest := car.ResolveSort(car.SortNewest)

	for _, key := range []string{"", "price", "PRICE-ASC", "random; DROP TABLE", "🚗"} {
		assert.Equal(t, newest, car.ResolveSort(key), "key %q", key)
	}
}

/*
TestResolveSort_PriceDescOrdering verifies the resolved ordering end to end
against the in-memory store: prices [10k, 30k, 20k] list as [30k, 20k, 10k].
*/
func TestResolveSort_PriceDescOrdering(t *testing.T) {
	now := time.Now()
	store := car.NewMemoryRepository(
		&car.Car{ID: "a", Price: 10_000, Status: car.StatusAvailable, CreatedAt: now},
		&car.Car{ID: "b", Price: 30_000, Status: car.StatusAvailable, CreatedAt: now},
		&car.Car{ID: "c", Price: 20_000, Status: car.StatusAvailable, CreatedAt: now},
	)

	cars, err := store.List(context.Background(), car.Filter{}, car.ResolveSort(car.SortPriceDesc), 10, 0)
	require.NoError(t, err)
	require.Len(t, cars, 3)

	assert.Equal(t, []float64{30_000, 20_000, 10_000}, []float64{cars[0].Price, cars[1].Price, cars[2].Price})
}
