package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchModName(t *testing.T) {
	tests := []struct {
		query     string
		candidate string
		strict    bool
		expected  bool
	}{
		{"Better Grass", "better_grass", true, true},
		{"Better Grass", "Better Grass Extended", true, false},
		{"Better Grass", "Better Grass Extended", false, true},
		{"Better Grass HD Pack", "Better Grass", false, true},
		{"grass better", "Better Grass", false, true},
		{"grass lush", "Better Grass", false, false},
		{"", "Better Grass", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchModName(tt.query, tt.candidate, tt.strict))
		})
	}
}
