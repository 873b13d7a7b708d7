package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidDistribution is returned for parameters that do not describe a
// truncated normal distribution.
var ErrInvalidDistribution = errors.New("invalid truncated normal parameters")

// TruncNorm draws a random value from a normal distribution with mean mu and
// standard deviation sigma, truncated so the result always lies between
// truncMin and truncMax. Sampling is done by inverse transform: pick a
// uniform value between the CDF of the two bounds and map it back through
// the quantile function.
func TruncNorm(mu, sigma, truncMin, truncMax float64) (float64, error) {
	if math.IsNaN(sigma) || sigma <= 0 {
		return 0, fmt.Errorf("%w: sigma must be positive, got %v", ErrInvalidDistribution, sigma)
	}
	if math.IsNaN(truncMin) || math.IsNaN(truncMax) || truncMin >= truncMax {
		return 0, fmt.Errorf("%w: bounds [%v, %v] are not an interval", ErrInvalidDistribution, truncMin, truncMax)
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	lo := dist.CDF(truncMin)
	hi := dist.CDF(truncMax)
	u := lo + rand.Float64()*(hi-lo)
	x := dist.Quantile(u)

	// the quantile can land just outside the bounds when almost all of the
	// distribution's mass sits beyond them
	return math.Min(math.Max(x, truncMin), truncMax), nil
}
