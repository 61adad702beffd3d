package rangesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentPosition(t *testing.T) {
	tests := []struct {
		name          string
		value, lo, hi float64
		expected      float64
	}{
		{"at minimum", 1000, 1000, 1000000, 0},
		{"at maximum", 1000000, 1000, 1000000, 100},
		{"midpoint", 15, 1, 29, 50},
		{"ppf default tenure", 15, 15, 50, 0},
		{"below range", 0, 10, 20, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentPosition(tt.value, tt.lo, tt.hi)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestPercentPosition_DegenerateRange(t *testing.T) {
	_, err := PercentPosition(5, 5, 5)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: 1, Max: 30, Step: 0.5}

	assert.Equal(t, 1.0, b.Clamp(-3))
	assert.Equal(t, 30.0, b.Clamp(45))
	assert.Equal(t, 12.5, b.Snap(12.6))
	assert.Equal(t, 30.0, b.Snap(31))
	assert.True(t, b.Contains(30))
	assert.False(t, b.Contains(30.1))

	pos, err := b.Position(100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pos)

	_, err = Bounds{Min: 2, Max: 2}.Position(2)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}
