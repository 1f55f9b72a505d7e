package region

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const smallDiff = 1e-9

// the two-outcome problem used throughout: an outcome that is much
// more likely under the alternative, and one that is less likely
var (
	scenNull = []float64{0.5, 0.5}
	scenAlt  = []float64{0.9, 0.1}
)

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

/*** Tests that arrays have approximately same values ***/
func cmpFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !appreq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestMetrics(tst *testing.T) {
	sizes, powers, err := Metrics(scenNull, scenAlt)
	if err != nil {
		tst.Fatal(err)
	}
	wantSizes := []float64{0, 0.5, 0.5, 1}
	wantPowers := []float64{0, 0.9, 0.1, 1.0}
	if !cmpFloats(sizes, wantSizes) {
		tst.Error("Results missmatch:", sizes, wantSizes)
	}
	if !cmpFloats(powers, wantPowers) {
		tst.Error("Results missmatch:", powers, wantPowers)
	}
}

// The empty region comes first with zero metrics, the full region
// last with the vector totals.
func TestMetricsBounds(tst *testing.T) {
	null := []float64{0.2, 0.3, 0.5}
	alt := []float64{0.1, 0.1, 0.8}
	sizes, powers, err := Metrics(null, alt)
	if err != nil {
		tst.Fatal(err)
	}
	if len(sizes) != 8 || len(powers) != 8 {
		tst.Fatalf("expected 8 regions, got %d and %d", len(sizes), len(powers))
	}
	if !appreq(sizes[0], 0) || !appreq(powers[0], 0) {
		tst.Error("empty region should have zero size and power")
	}
	last := len(sizes) - 1
	if !appreq(sizes[last], 1) || !appreq(powers[last], 1) {
		tst.Error("full region should have the total size and power")
	}
}

func TestLengthMismatch(tst *testing.T) {
	if _, _, err := Metrics([]float64{1}, scenAlt); err == nil {
		tst.Error("expected error for mismatched lengths")
	}
	if _, err := Classify([]float64{1}, scenAlt); err == nil {
		tst.Error("expected error for mismatched lengths")
	}
}

func TestNegativeLikelihood(tst *testing.T) {
	if _, err := Classify([]float64{-0.1, 1.1}, scenAlt); err == nil {
		tst.Error("expected error for negative likelihood")
	}
}

// n=0 is degenerate but valid: a single empty region.
func TestEmptyOutcomeSpace(tst *testing.T) {
	c, err := Classify(nil, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if len(c.Regions) != 1 {
		tst.Fatalf("expected 1 region, got %d", len(c.Regions))
	}
	r := c.Regions[0]
	if !appreq(r.Size, 0) || !appreq(r.Power, 0) {
		tst.Error("degenerate region should have zero size and power")
	}
	if !r.LRT {
		tst.Error("the empty region is always an LRT region")
	}
	if r.Dominated {
		tst.Error("a single region cannot be dominated")
	}
}

// canonical order: {}, {0}, {1}, {0,1}; only {1} is dominated (by {0},
// equal size, strictly less power).
func TestDominance(tst *testing.T) {
	c, err := Classify(scenNull, scenAlt)
	if err != nil {
		tst.Fatal(err)
	}
	want := []bool{false, false, true, false}
	if diff := cmp.Diff(want, c.DominatedFlags()); diff != "" {
		tst.Errorf("Dominance flags mismatch:\n%s", diff)
	}
}

// Regions with identical (size, power) points never dominate each
// other: dominance needs a strict improvement somewhere.
func TestEqualPointsNotDominated(tst *testing.T) {
	c, err := Classify([]float64{0.5, 0.5}, []float64{0.5, 0.5})
	if err != nil {
		tst.Fatal(err)
	}
	for i, r := range c.Regions {
		if r.Dominated {
			tst.Errorf("region %d (%v) incorrectly flagged dominated", i, r.Outcomes)
		}
	}
}

func TestDominanceConsistent(tst *testing.T) {
	null := []float64{0.1, 0.2, 0.3, 0.4}
	alt := []float64{0.4, 0.3, 0.2, 0.1}
	c, err := Classify(null, alt)
	if err != nil {
		tst.Fatal(err)
	}
	for i, a := range c.Regions {
		if !a.Dominated {
			continue
		}
		found := false
		for j, b := range c.Regions {
			if i == j {
				continue
			}
			if b.Size <= a.Size && b.Power >= a.Power &&
				(b.Size < a.Size || b.Power > a.Power) {
				found = true
				break
			}
		}
		if !found {
			tst.Errorf("region %v flagged dominated without a dominating region", a.Outcomes)
		}
	}
}

// ratios = [1.8, 0.2], so the LRT regions are {}, {0} and {0,1}.
func TestLRTFlags(tst *testing.T) {
	c, err := Classify(scenNull, scenAlt)
	if err != nil {
		tst.Fatal(err)
	}
	want := []bool{true, true, false, true}
	if diff := cmp.Diff(want, c.LRTFlags()); diff != "" {
		tst.Errorf("LRT flags mismatch:\n%s", diff)
	}
}

// Tied ratios produce no boundary between the tied outcomes: with
// ratios [1.6, 1.6, 0.4] no threshold separates outcome 0 from 1.
func TestLRTTies(tst *testing.T) {
	null := []float64{0.25, 0.25, 0.5}
	alt := []float64{0.4, 0.4, 0.2}
	c, err := Classify(null, alt)
	if err != nil {
		tst.Fatal(err)
	}
	want := []bool{true, false, false, false, true, false, false, true}
	if diff := cmp.Diff(want, c.LRTFlags()); diff != "" {
		tst.Errorf("LRT flags mismatch:\n%s", diff)
	}
}

func TestLRTBoundaryRegions(tst *testing.T) {
	null := []float64{0.1, 0.2, 0.3, 0.4}
	alt := []float64{0.4, 0.3, 0.2, 0.1}
	c, err := Classify(null, alt)
	if err != nil {
		tst.Fatal(err)
	}
	if !c.Regions[0].LRT {
		tst.Error("the empty region is always an LRT region")
	}
	if !c.Regions[len(c.Regions)-1].LRT {
		tst.Error("the full region is always an LRT region")
	}
}

func TestRatiosZeroNull(tst *testing.T) {
	r := Ratios([]float64{0.5, 0, 0}, []float64{0.2, 0.8, 0})
	if !appreq(r[0], 0.4) {
		tst.Error("Results missmatch:", r[0], 0.4)
	}
	if !math.IsInf(r[1], 1) {
		tst.Error("zero null with positive alt should give +Inf, got", r[1])
	}
	if r[2] != 0 {
		tst.Error("outcome impossible under both hypotheses should give 0, got", r[2])
	}
}

// An outcome impossible under the null always enters a rejection
// region first: it adds power at zero size.
func TestLRTZeroNull(tst *testing.T) {
	null := []float64{0, 0.5, 0.5}
	alt := []float64{0.8, 0.1, 0.1}
	c, err := Classify(null, alt)
	if err != nil {
		tst.Fatal(err)
	}
	want := []bool{true, true, false, false, false, false, false, true}
	if diff := cmp.Diff(want, c.LRTFlags()); diff != "" {
		tst.Errorf("LRT flags mismatch:\n%s", diff)
	}
}

func TestIdempotence(tst *testing.T) {
	c1, err := Classify(scenNull, scenAlt)
	if err != nil {
		tst.Fatal(err)
	}
	c2, err := Classify(scenNull, scenAlt)
	if err != nil {
		tst.Fatal(err)
	}
	if diff := cmp.Diff(c1, c2); diff != "" {
		tst.Errorf("Repeated classification differs:\n%s", diff)
	}
}

func TestInputsNotMutated(tst *testing.T) {
	null := []float64{0.5, 0.5}
	alt := []float64{0.9, 0.1}
	if _, err := Classify(null, alt); err != nil {
		tst.Fatal(err)
	}
	if !cmpFloats(null, scenNull) || !cmpFloats(alt, scenAlt) {
		tst.Error("inputs were mutated")
	}
}
