package league_test

import (
	"testing"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		want        float64
	}{
		{"zero denominator", 5, 0, 0},
		{"zero over zero", 0, 0, 0},
		{"simple", 4, 10, 0.4},
		{"whole", 12, 4, 3},
		{"negative numerator", -3, 4, -0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, league.Ratio(tt.numerator, tt.denominator), 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.4, league.Round2(league.Ratio(4, 10)))
	assert.Equal(t, 0.1, league.Round2(league.Ratio(10, 100)))
	assert.Equal(t, 0.73, league.Round2(league.Ratio(60, 82)))
	assert.Equal(t, 4.33, league.Round2(13.0/3.0))
	assert.Equal(t, 0.0, league.Round2(0))
}
