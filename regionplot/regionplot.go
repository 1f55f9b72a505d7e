// Package regionplot draws size-power scatter plots for region
// classifications.
package regionplot

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/npstat/nptest/region"
)

var (
	admissibleColor = color.RGBA{B: 255, A: 255}
	dominatedColor  = color.RGBA{R: 255, G: 165, A: 255}
	cutoffColor     = color.RGBA{R: 255, A: 255}
	selectedColor   = color.RGBA{B: 139, A: 255}
)

// Regions returns a scatter plot of every rejection region, size on
// the x axis and power on the y axis. Dominated regions are drawn in
// orange, LRT regions with a larger glyph.
func Regions(c *region.Classification) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "size"
	p.Y.Label.Text = "power"

	pts := make(plotter.XYs, len(c.Regions))
	for i, reg := range c.Regions {
		pts[i].X = reg.Size
		pts[i].Y = reg.Power
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		st := draw.GlyphStyle{
			Color:  admissibleColor,
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
		if c.Regions[i].Dominated {
			st.Color = dominatedColor
		}
		if c.Regions[i].LRT {
			st.Radius = vg.Points(4)
		}
		return st
	}
	p.Add(s)
	return p, nil
}

// Selection returns the scatter plot with a vertical line at the size
// cap and the selected region highlighted. When no region qualifies,
// the cutoff line is still drawn and nothing is highlighted.
func Selection(c *region.Classification, alpha float64) (*plot.Plot, error) {
	p, err := Regions(c)
	if err != nil {
		return nil, err
	}
	cut, err := plotter.NewLine(plotter.XYs{{X: alpha, Y: 0}, {X: alpha, Y: 1}})
	if err != nil {
		return nil, err
	}
	cut.Color = cutoffColor
	p.Add(cut)

	idx, err := c.SelectBest(alpha)
	if errors.Is(err, region.ErrNoRegion) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	best := c.Regions[idx]
	hl, err := plotter.NewScatter(plotter.XYs{{X: best.Size, Y: best.Power}})
	if err != nil {
		return nil, err
	}
	hl.GlyphStyle = draw.GlyphStyle{
		Color:  selectedColor,
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(hl)
	return p, nil
}

// Save writes the plot as a 4x4 inch image; the format follows the
// file extension (png, pdf, svg, ...).
func Save(p *plot.Plot, name string) error {
	return p.Save(4*vg.Inch, 4*vg.Inch, name)
}
