package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncNormStaysWithinBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v, err := TruncNorm(0, 1, -0.5, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if v < -0.5 || v > 0.5 {
			t.Fatalf("draw %v escaped the truncation bounds", v)
		}
	}
}

func TestTruncNormTracksTheMean(t *testing.T) {
	// bounds are wide enough that truncation barely matters
	var sum float64
	n := 2000
	for i := 0; i < n; i++ {
		v, err := TruncNorm(5, 0.5, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		sum += v
	}

	assert.InDelta(t, sum/float64(n), 5.0, 0.1)
}

func TestTruncNormFarTail(t *testing.T) {
	// nearly all mass lies below the window, so draws collapse onto it
	v, err := TruncNorm(0, 1, 40, 41)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(v >= 40 && v <= 41)
}

func TestTruncNormRejectsBadParameters(t *testing.T) {
	cases := map[string][4]float64{
		"zeroSigma":     {0, 0, -1, 1},
		"negativeSigma": {0, -2, -1, 1},
		"nanSigma":      {0, math.NaN(), -1, 1},
		"emptyInterval": {0, 1, 1, 1},
		"flippedBounds": {0, 1, 2, -2},
		"nanBound":      {0, 1, math.NaN(), 1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := TruncNorm(c[0], c[1], c[2], c[3])
			assert.ErrorIs(t, err, ErrInvalidDistribution)
		})
	}
}
