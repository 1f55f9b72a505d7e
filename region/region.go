// Package region computes the size and power of every rejection region
// of a finite discrete hypothesis test and classifies the regions.
//
// The outcome space has n discrete outcomes; null and alt hold the
// likelihood of each outcome under the null and the alternative
// hypothesis. A rejection region is a subset of outcome indices: the
// test rejects the null when the observed outcome falls in the region.
// Its size is the total null likelihood inside the region (the Type I
// error rate) and its power the total alternative likelihood.
//
// Regions always appear in the canonical powerset order, and every
// per-region slice returned from this package is aligned with that
// order.
package region

import (
	"fmt"
	"math"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/floats"

	"github.com/npstat/nptest/powerset"
)

// log is the global logging variable.
var log = logging.MustGetLogger("region")

// maxOutcomes limits the outcome-space dimension so that regions fit
// in a 64-bit mask. The O(2^n) memory cost makes much smaller n the
// real limit.
const maxOutcomes = 63

// probTol is the tolerance when checking that likelihoods sum to one.
const probTol = 1e-9

// Region is a single rejection region together with its
// classification. Outcomes holds the indices of the region in
// increasing order.
type Region struct {
	Outcomes  []int   `json:"outcomes"`
	Size      float64 `json:"size"`
	Power     float64 `json:"power"`
	Dominated bool    `json:"dominated"`
	LRT       bool    `json:"lrt"`
}

// Classification holds every rejection region of an outcome space in
// canonical order together with the input likelihoods.
type Classification struct {
	Null    []float64 `json:"null"`
	Alt     []float64 `json:"alt"`
	Regions []Region  `json:"regions"`
}

// checkVectors validates the likelihood inputs shared by all the
// entry points.
func checkVectors(null, alt []float64) error {
	if len(null) != len(alt) {
		return fmt.Errorf("likelihood vectors have different lengths: %d and %d",
			len(null), len(alt))
	}
	if len(null) > maxOutcomes {
		return fmt.Errorf("outcome space too large: %d > %d", len(null), maxOutcomes)
	}
	for i := range null {
		if null[i] < 0 || alt[i] < 0 {
			return fmt.Errorf("negative likelihood for outcome %d", i)
		}
	}
	return nil
}

// Metrics returns the size and power of every rejection region in
// canonical order. The inputs are not modified.
func Metrics(null, alt []float64) (sizes, powers []float64, err error) {
	if err := checkVectors(null, alt); err != nil {
		return nil, nil, err
	}
	total := powerset.Count(len(null))
	sizes = make([]float64, 0, total)
	powers = make([]float64, 0, total)
	e := powerset.New(len(null))
	for subset, ok := e.Next(); ok; subset, ok = e.Next() {
		var size, power float64
		for _, i := range subset {
			size += null[i]
			power += alt[i]
		}
		sizes = append(sizes, size)
		powers = append(powers, power)
	}
	return sizes, powers, nil
}

// Classify computes size, power, dominance and LRT flags for every
// rejection region.
//
// A region is dominated if another region has size <= and power >=
// with at least one strict inequality. A region is an LRT region if it
// is exactly the set of outcomes whose likelihood ratio alt/null
// exceeds some threshold; a zero null likelihood gives ratio +Inf when
// the alternative likelihood is positive and 0 when both are zero.
func Classify(null, alt []float64) (*Classification, error) {
	if err := checkVectors(null, alt); err != nil {
		return nil, err
	}
	n := len(null)
	if n > 0 {
		if s := floats.Sum(null); math.Abs(s-1) > probTol {
			log.Warningf("null likelihoods sum to %g, not 1", s)
		}
		if s := floats.Sum(alt); math.Abs(s-1) > probTol {
			log.Warningf("alternative likelihoods sum to %g, not 1", s)
		}
	}

	total := powerset.Count(n)
	log.Debugf("classifying %d regions over %d outcomes", total, n)

	regions := make([]Region, 0, total)
	e := powerset.New(n)
	for subset, ok := e.Next(); ok; subset, ok = e.Next() {
		var size, power float64
		for _, i := range subset {
			size += null[i]
			power += alt[i]
		}
		regions = append(regions, Region{Outcomes: subset, Size: size, Power: power})
	}

	markDominated(regions)

	masks := lrtMasks(null, alt)
	for i := range regions {
		regions[i].LRT = masks[powerset.Mask(regions[i].Outcomes)]
	}
	log.Debugf("%d LRT regions", len(masks))

	return &Classification{Null: null, Alt: alt, Regions: regions}, nil
}

// markDominated sets the Dominated flag on every region that is
// weakly dominated by another one. Comparing size and power directly
// is equivalent to weak Pareto dominance on the (1-size, power)
// points, where both coordinates are larger-is-better.
func markDominated(regions []Region) {
	for i := range regions {
		for j := range regions {
			if i == j {
				continue
			}
			if weaklyDominates(&regions[j], &regions[i]) {
				regions[i].Dominated = true
				break
			}
		}
	}
}

// weaklyDominates reports whether a is at least as good as b on both
// size and power, and strictly better on one.
func weaklyDominates(a, b *Region) bool {
	if a.Size > b.Size || a.Power < b.Power {
		return false
	}
	return a.Size < b.Size || a.Power > b.Power
}

// Sizes returns the per-region sizes in canonical order.
func (c *Classification) Sizes() []float64 {
	s := make([]float64, len(c.Regions))
	for i := range c.Regions {
		s[i] = c.Regions[i].Size
	}
	return s
}

// Powers returns the per-region powers in canonical order.
func (c *Classification) Powers() []float64 {
	p := make([]float64, len(c.Regions))
	for i := range c.Regions {
		p[i] = c.Regions[i].Power
	}
	return p
}

// DominatedFlags returns the per-region dominance flags in canonical
// order.
func (c *Classification) DominatedFlags() []bool {
	f := make([]bool, len(c.Regions))
	for i := range c.Regions {
		f[i] = c.Regions[i].Dominated
	}
	return f
}

// LRTFlags returns the per-region likelihood-ratio test flags in
// canonical order.
func (c *Classification) LRTFlags() []bool {
	f := make([]bool, len(c.Regions))
	for i := range c.Regions {
		f[i] = c.Regions[i].LRT
	}
	return f
}
