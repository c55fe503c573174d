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
TestMemoryRepository_ExactSetMembership verifies that make/model/color set
filters match exactly, mirroring the SQL store's equality predicate. Only
the free-text search is case-insensitive.
*/
func TestMemoryRepository_ExactSetMembership(t *testing.T) {
	store := car.NewMemoryRepository(&car.Car{
		ID:     "car-1",
		Slug:   "bmw-m4-2024",
		Make:   "BMW",
		Model:  "M4",
		Color:  "Alpine White",
		Status: car.StatusAvailable,
	})

	tests := []struct {
		name     string
		filter   car.Filter
		expected int
	}{
		{"make_exact", car.Filter{Makes: []string{"BMW"}}, 1},
		{"make_wrong_case", car.Filter{Makes: []string{"bmw"}}, 0},
		{"model_wrong_case", car.Filter{Models: []string{"m4"}}, 0},
		{"color_wrong_case", car.Filter{Colors: []string{"alpine white"}}, 0},
		{"search_is_case_insensitive", car.Filter{Search: "bmw"}, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			total, err := store.Count(context.Background(), testCase.filter)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, total)
		})
	}
}

/*
TestMemoryRepository_RelatedExactMake verifies that the similar-cars query
compares the make exactly, as the SQL store does.
*/
func TestMemoryRepository_RelatedExactMake(t *testing.T) {
	reference := &car.Car{
		ID:     "ref",
		Slug:   "bmw-m4-2024",
		Make:   "BMW",
		Price:  90000,
		Status: car.StatusAvailable,
	}
	sibling := &car.Car{
		ID:        "sibling",
		Slug:      "bmw-m3-2024",
		Make:      "BMW",
		Price:     85000,
		Status:    car.StatusAvailable,
		CreatedAt: time.Now(),
	}
	offCase := &car.Car{
		ID:        "off-case",
		Slug:      "bmw-m2-2024",
		Make:      "bmw",
		Price:     88000,
		Status:    car.StatusAvailable,
		CreatedAt: time.Now(),
	}

	store := car.NewMemoryRepository(reference, sibling, offCase)

	related, err := store.Related(context.Background(), reference, 4)
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.Equal(t, "sibling", related[0].ID)
}
