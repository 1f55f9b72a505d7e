// Package report renders region classifications as text tables and
// aggregate summaries.
package report

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"github.com/npstat/nptest/region"
)

// WriteRegions writes one line per region with its outcomes, size,
// power and classification flags, in canonical order.
func WriteRegions(w io.Writer, c *region.Classification) error {
	if _, err := fmt.Fprintln(w, "region\tsize\tpower\tdominated\tLRT"); err != nil {
		return err
	}
	for _, reg := range c.Regions {
		_, err := fmt.Fprintf(w, "%v\t%g\t%g\t%v\t%v\n",
			reg.Outcomes, reg.Size, reg.Power, reg.Dominated, reg.LRT)
		if err != nil {
			return err
		}
	}
	return nil
}

// Summary aggregates a classification run. All fields are exported
// for JSON output.
type Summary struct {
	NOutcomes   int            `json:"n_outcomes"`
	NRegions    int            `json:"n_regions"`
	NAdmissible int            `json:"n_admissible"`
	NLRT        int            `json:"n_lrt"`
	MeanSize    float64        `json:"mean_size"`
	MaxPower    float64        `json:"max_power"`
	Alpha       float64        `json:"alpha,omitempty"`
	BestIndex   int            `json:"best_index"`
	Best        *region.Region `json:"best,omitempty"`
}

// NewSummary computes aggregate statistics for a classification.
// BestIndex is -1 until AddSelection records a selection.
func NewSummary(c *region.Classification) (*Summary, error) {
	s := &Summary{
		NOutcomes: len(c.Null),
		NRegions:  len(c.Regions),
		BestIndex: -1,
	}
	for i := range c.Regions {
		if !c.Regions[i].Dominated {
			s.NAdmissible++
		}
		if c.Regions[i].LRT {
			s.NLRT++
		}
	}
	var err error
	s.MeanSize, err = stats.Mean(c.Sizes())
	if err != nil {
		return nil, err
	}
	s.MaxPower, err = stats.Max(c.Powers())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// AddSelection records the best region under the given size cap.
func (s *Summary) AddSelection(c *region.Classification, alpha float64) error {
	idx, err := c.SelectBest(alpha)
	if err != nil {
		return err
	}
	s.Alpha = alpha
	s.BestIndex = idx
	best := c.Regions[idx]
	s.Best = &best
	return nil
}
