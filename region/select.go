package region

import (
	"errors"
	"math"
)

// ErrNoRegion is returned when no likelihood-ratio region satisfies
// the size constraint.
var ErrNoRegion = errors.New("no likelihood-ratio region with size below alpha")

// SelectBest returns the canonical index of the LRT region with the
// highest power among the regions with size strictly below alpha.
// Ties on power resolve to the earliest region in canonical order. A
// qualified region with zero power still wins over no region at all;
// only when nothing qualifies (e.g. alpha <= 0) is ErrNoRegion
// returned.
func (c *Classification) SelectBest(alpha float64) (int, error) {
	best := -1
	bestPower := math.Inf(-1)
	for i := range c.Regions {
		reg := &c.Regions[i]
		if !reg.LRT || reg.Size >= alpha {
			continue
		}
		if reg.Power > bestPower {
			best = i
			bestPower = reg.Power
		}
	}
	if best < 0 {
		return -1, ErrNoRegion
	}
	return best, nil
}

// SelectBest classifies all the rejection regions and picks the best
// one under the size cap; see Classification.SelectBest.
func SelectBest(null, alt []float64, alpha float64) (int, error) {
	c, err := Classify(null, alt)
	if err != nil {
		return -1, err
	}
	return c.SelectBest(alpha)
}
