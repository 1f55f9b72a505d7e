package region

import (
	"errors"
	"testing"
)

// size 0.5 < 0.6, LRT, power 0.9: region {0}, canonical index 1.
func TestSelectBest(tst *testing.T) {
	idx, err := SelectBest(scenNull, scenAlt, 0.6)
	if err != nil {
		tst.Fatal(err)
	}
	if idx != 1 {
		tst.Errorf("expected region index 1, got %d", idx)
	}
}

// The cap is strict: with alpha=0.5 region {0} (size 0.5) no longer
// qualifies and the zero-power empty region is still a valid answer.
func TestSelectBestStrictCap(tst *testing.T) {
	idx, err := SelectBest(scenNull, scenAlt, 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	if idx != 0 {
		tst.Errorf("expected the empty region (index 0), got %d", idx)
	}
}

func TestSelectBestNoRegion(tst *testing.T) {
	_, err := SelectBest(scenNull, scenAlt, 0)
	if !errors.Is(err, ErrNoRegion) {
		tst.Errorf("expected ErrNoRegion, got %v", err)
	}
}

// First canonical index wins power ties.
func TestSelectBestTieBreak(tst *testing.T) {
	null := []float64{0.5, 0.5}
	alt := []float64{0.5, 0.5}
	// every prefix is tied in ratio: LRT regions are only {} and {0,1}
	idx, err := SelectBest(null, alt, 0.4)
	if err != nil {
		tst.Fatal(err)
	}
	if idx != 0 {
		tst.Errorf("expected index 0, got %d", idx)
	}
}

func TestSelectBestPropagatesErrors(tst *testing.T) {
	if _, err := SelectBest([]float64{1}, []float64{0.5, 0.5}, 0.1); err == nil {
		tst.Error("expected error for mismatched lengths")
	}
}
