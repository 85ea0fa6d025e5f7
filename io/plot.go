package io

import (
	"fmt"
	"image/color"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/panel"
	"github.com/phil-mansfield/govlm/vlm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// PlotSweep writes CL and CD against the angle of attack to fname. The image
// format is taken from the file extension.
func PlotSweep(res *vlm.SweepResult, fname string) error {
	if len(res.Alpha) == 0 {
		return fmt.Errorf("no angles of attack in sweep")
	}

	cl := make(plotter.XYs, len(res.Alpha))
	cd := make(plotter.XYs, len(res.Alpha))
	for i, alpha := range res.Alpha {
		cl[i].X, cl[i].Y = alpha, res.CL[i]
		cd[i].X, cd[i].Y = alpha, res.CD[i]
	}

	p := plot.New()
	p.Title.Text = "Lift and drag coefficients"
	p.X.Label.Text = "alpha (degrees)"
	p.Y.Label.Text = "coefficient"
	p.Add(plotter.NewGrid())

	err := plotutil.AddLinePoints(p,
		"CL", cl,
		"CD", cd,
	)
	if err != nil {
		return err
	}

	return p.Save(plotWidth, plotHeight, fname)
}

// PlotMesh writes the outlines and control points of panels to fname.
func PlotMesh(panels []*panel.Panel, fname string) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to plot")
	}

	p := plot.New()
	p.Title.Text = "Vortex lattice"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	cps := make(plotter.XYs, len(panels))
	for i, pan := range panels {
		corners := pan.Corners()
		outline := make(plotter.XYs, len(corners)+1)
		for j := range outline {
			c := corners[j%len(corners)]
			outline[j].X, outline[j].Y = c[0], c[1]
		}

		line, err := plotter.NewLine(outline)
		if err != nil {
			return err
		}
		line.Color = color.Gray{Y: 96}
		p.Add(line)

		cps[i].X, cps[i].Y = pan.CP[0], pan.CP[1]
	}

	scatter, err := plotter.NewScatter(cps)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = plotutil.Color(0)
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(scatter)
	p.Legend.Add("control points", scatter)

	return p.Save(plotWidth, plotHeight, fname)
}

// PlotAirfoil writes the upper and lower surfaces and camber line of an
// airfoil, sampled at n+1 chordwise points, to fname.
func PlotAirfoil(profile airfoil.Profile, n int, fname string) error {
	if n < 1 {
		return fmt.Errorf("need at least one airfoil interval, got %d", n)
	}

	upper := make(plotter.XYs, n+1)
	lower := make(plotter.XYs, n+1)
	camber := make(plotter.XYs, n+1)

	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n)

		xu, zu, err := profile.Upper(x)
		if err != nil {
			return err
		}
		xl, zl, err := profile.Lower(x)
		if err != nil {
			return err
		}
		zc, err := profile.Line(x)
		if err != nil {
			return err
		}

		upper[i].X, upper[i].Y = xu, zu
		lower[i].X, lower[i].Y = xl, zl
		camber[i].X, camber[i].Y = x, zc
	}

	p := plot.New()
	p.Title.Text = fmt.Sprint(profile)
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "z/c"

	err := plotutil.AddLines(p,
		"upper", upper,
		"lower", lower,
		"camber", camber,
	)
	if err != nil {
		return err
	}

	return p.Save(plotWidth, 0.4*plotWidth, fname)
}
