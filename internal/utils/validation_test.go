package utils_test

import (
	"testing"

	"github.com/docmarket/docmarket_backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestCoercePoints(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		def      int64
		expected int64
	}{
		{"valid number", "150", 100, 150},
		{"empty falls back", "", 100, 100},
		{"garbage falls back", "abc", 100, 100},
		{"float falls back", "99.5", 100, 100},
		{"negative is parsed", "-5", 100, -5},
		{"zero is parsed", "0", 100, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.CoercePoints(tc.raw, tc.def))
		})
	}
}
