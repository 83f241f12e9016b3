// Package chart draws the two real branches of the Lambert W function with
// gonum/plot.
package chart

import (
	"image/color"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

const (
	// DefaultSteps is the number of samples per branch.
	DefaultSteps = 10000

	// W0Max is the right end of the plotted W0 range.
	W0Max = 10.0
	// Wm1Max is the right end of the plotted W-1 range, chosen so the curve
	// stays inside the y range of the chart.
	Wm1Max = -0.073

	DefaultWidth  = 16 * vg.Inch
	DefaultHeight = 9 * vg.Inch
)

// Branches samples W0 over [-1/e, W0Max) and W-1 over [-1/e, Wm1Max) at
// steps evenly spaced points each.
func Branches(steps int) (w0, wm1 plotter.XYs, err error) {
	if steps < 2 {
		return nil, nil, errors.NewValidationError("steps", "must be at least 2", steps)
	}
	w0, err = sampleBranch(steps, fukushima.NegInvE, W0Max, fukushima.W0)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sampling W0")
	}
	wm1, err = sampleBranch(steps, fukushima.NegInvE, Wm1Max, fukushima.Wm1)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sampling W-1")
	}
	return w0, wm1, nil
}

func sampleBranch(steps int, from, to float64, f func(float64) (float64, error)) (plotter.XYs, error) {
	var first error
	pts := lo.Times(steps, func(i int) plotter.XY {
		z := from + (to-from)*float64(i)/float64(steps)
		w, err := f(z)
		if err != nil && first == nil {
			first = err
		}
		return plotter.XY{X: z, Y: w}
	})
	return plotter.XYs(pts), first
}

// New builds the chart of both branches.
func New(steps int) (*plot.Plot, error) {
	w0, wm1, err := Branches(steps)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Lambert W function"
	p.X.Label.Text = "z"
	p.Y.Label.Text = "W(z)"
	p.X.Min, p.X.Max = -1, W0Max
	p.Y.Min, p.Y.Max = -4, 2
	p.Add(plotter.NewGrid())

	l0, err := plotter.NewLine(w0)
	if err != nil {
		return nil, errors.Wrap(err, "W0 line")
	}
	l0.Color = color.Black

	l1, err := plotter.NewLine(wm1)
	if err != nil {
		return nil, errors.Wrap(err, "W-1 line")
	}
	l1.Color = color.RGBA{R: 255, A: 255}

	p.Add(l0, l1)
	p.Legend.Add("W0(z)", l0)
	p.Legend.Add("W-1(z)", l1)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// Save renders the chart to path. The format follows the file extension
// (png, svg, pdf, ...).
func Save(path string, steps int, width, height vg.Length) error {
	p, err := New(steps)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}
