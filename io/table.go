package io

import (
	"fmt"
	"path/filepath"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/vlm"
	"github.com/phil-mansfield/table"
)

// ReadPlanform reads wing sections from a text file with the columns
// x y chord, one section per line, from root to tip.
func ReadPlanform(file string) (les []geom.Vec2, chords []float64, err error) {
	xCol, yCol, chordCol := 0, 1, 2

	colIdxs := []int{xCol, yCol, chordCol}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, nil, err
	}

	xs, ys := cols[0], cols[1]
	chords = cols[2]
	if len(chords) < 2 {
		return nil, nil, fmt.Errorf("%w: planform file %s has %d sections, "+
			"need at least 2", ErrConfig, file, len(chords))
	}

	les = make([]geom.Vec2, len(xs))
	for i := range les {
		les[i] = geom.Vec2{xs[i], ys[i]}
	}
	return les, chords, nil
}

// ReadSweep reads a sweep written by WriteSweep.
func ReadSweep(file string) (*vlm.SweepResult, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	return &vlm.SweepResult{Alpha: cols[0], CL: cols[1], CD: cols[2]}, nil
}

// ReadCamber reads a camber line from a text file with the columns x z,
// where both are normalized by the chord and x covers [0, 1].
func ReadCamber(file string) (*airfoil.Tabulated, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	return airfoil.NewTabulated(filepath.Base(file), cols[0], cols[1])
}
