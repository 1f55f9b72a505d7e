package region

import (
	"math"
	"sort"
)

// Ratios returns the likelihood ratio alt[i]/null[i] for every
// outcome. A zero null likelihood gives +Inf when alt[i] > 0; an
// outcome impossible under both hypotheses gives 0, so it only joins
// the full region.
func Ratios(null, alt []float64) []float64 {
	r := make([]float64, len(null))
	for i := range null {
		switch {
		case null[i] > 0:
			r[i] = alt[i] / null[i]
		case alt[i] > 0:
			r[i] = math.Inf(1)
		default:
			r[i] = 0
		}
	}
	return r
}

// lrtMasks returns the bitmasks of every likelihood-ratio rejection
// region: the empty set and the full set (thresholds above the
// maximum ratio or below the minimum), plus each prefix of the
// outcomes sorted by descending ratio that ends at a strict ratio
// drop. Tied ratios produce no boundary because no threshold value
// separates tied outcomes.
func lrtMasks(null, alt []float64) map[uint64]bool {
	n := len(null)
	r := Ratios(null, alt)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// stable: ties keep the original index order
	sort.SliceStable(order, func(a, b int) bool {
		return r[order[a]] > r[order[b]]
	})

	full := uint64(1)<<uint(n) - 1
	masks := map[uint64]bool{0: true, full: true}

	var cum uint64
	for k := 0; k+1 < n; k++ {
		cum |= 1 << uint(order[k])
		if r[order[k]] > r[order[k+1]] {
			masks[cum] = true
		}
	}
	return masks
}
