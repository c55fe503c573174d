// Copyright (c) 2026 AutoVault. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autovault/autovault/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "BMW X5 2024", "bmw-x5-2024"},
		{"accents", "Citroën C4", "citroen-c4"},
		{"punctuation", "Mercedes-Benz  C-Class!", "mercedes-benz-c-class"},
		{"leading_trailing", "  Audi A4  ", "audi-a4"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

func TestForCar_Deterministic(t *testing.T) {
	first := slug.ForCar("Tesla", "Model 3", 2023)
	second := slug.ForCar("Tesla", "Model 3", 2023)

	assert.Equal(t, "tesla-model-3-2023", first)
	assert.Equal(t, first, second)
}
