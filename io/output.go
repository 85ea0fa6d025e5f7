package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/govlm/panel"
	"github.com/phil-mansfield/govlm/vlm"
)

// WritePanels writes a table of panel positions and corners to w.
func WritePanels(w io.Writer, panels []*panel.Panel) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Panel| Chrd% |  Span |  Points coordinates")
	fmt.Fprintln(bw, "------------------------------------------")
	for i, p := range panels {
		fmt.Fprintf(bw, " %3d | %5.2f | %5.3f | ",
			i, 100*p.ChordwisePosition, p.Span)
		for _, c := range p.Corners() {
			fmt.Fprintf(bw, " [%6.3f %6.3f]", c[0], c[1])
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteResult writes the per-panel solution and total coefficients of res
// to w.
func WriteResult(w io.Writer, res *vlm.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Panel|  V∞_n |   Wi   |  α_i  |   Γ   |   cl   |   cd    |")
	fmt.Fprintln(bw, "----------------------------------------------------------")
	for i, p := range res.Panels {
		fmt.Fprintf(bw, " %3d | %5.2f | %6.2f | %5.2f | %5.2f |%7.3f | %7.5f |\n",
			i, p.NormalVelocity, p.TrailingVelocity,
			p.InducedAngle*180/math.Pi, p.Gamma, p.Cl, p.Cd)
	}

	fmt.Fprintf(bw, "\nFor alpha = %g degrees:\n", res.Alpha)
	fmt.Fprintf(bw, "\tCL = %6.3f\n", res.CL)
	fmt.Fprintf(bw, "\tCD = %8.5f\n", res.CD)

	return bw.Flush()
}

// WriteSweep writes a sweep to w as whitespace separated columns of alpha,
// CL and CD, which ReadSweep can read back.
func WriteSweep(w io.Writer, res *vlm.SweepResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Column 0 - alpha (degrees)")
	fmt.Fprintln(bw, "# Column 1 - CL")
	fmt.Fprintln(bw, "# Column 2 - CD")
	for i := range res.Alpha {
		fmt.Fprintf(bw, "%8.3f %14.8g %14.8g\n", res.Alpha[i], res.CL[i], res.CD[i])
	}

	return bw.Flush()
}
