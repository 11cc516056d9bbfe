package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthBucketIndex(t *testing.T) {
	tests := []struct {
		name  string
		depth float64
		want  int
	}{
		{"lower boundary excluded", -10, 5},
		{"just above lower boundary", -9.99, 0},
		{"negative shallow", -1.2, 0},
		{"surface", 0, 0},
		{"first upper boundary included", 10, 0},
		{"just above 10", 10.0001, 1},
		{"30 included in bucket 1", 30, 1},
		{"mid bucket 2", 42.5, 2},
		{"50 included in bucket 2", 50, 2},
		{"mid bucket 3", 60, 3},
		{"70 included in bucket 3", 70, 3},
		{"mid bucket 4", 80, 4},
		{"90 included in bucket 4", 90, 4},
		{"just above 90", 90.0001, 5},
		{"deep", 650, 5},
		{"far below surface", -25, 5},
		{"positive infinity", math.Inf(1), 5},
		{"negative infinity", math.Inf(-1), 5},
		{"largest float", math.MaxFloat64, 5},
		{"NaN", math.NaN(), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DepthBucketIndex(tt.depth))
			assert.Equal(t, Viridis[tt.want], DepthColor(tt.depth))
		})
	}
}

func TestDepthBuckets_Contiguous(t *testing.T) {
	for i := 1; i < len(DepthBuckets); i++ {
		assert.Equal(t, DepthBuckets[i-1].Upper, DepthBuckets[i].Lower, "gap before bucket %d", i)
	}
}

func TestDepthLabel(t *testing.T) {
	assert.Equal(t, "-10 to 10", DepthLabel(5))
	assert.Equal(t, "50 to 70", DepthLabel(55))
	assert.Equal(t, "90+", DepthLabel(120))
	assert.Equal(t, "90+", DepthLabel(-10))
}
