package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/vlm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func bertinSmith(t *testing.T) *vlm.Surface {
	s := vlm.NewSurface(nil)
	err := s.AddSurface([]geom.Vec2{{0, 0}, {0.5, 0.5}}, []float64{0.2, 0.2},
		1, 4, vlm.SurfaceOptions{Mirror: true})
	require.NoError(t, err)
	return s
}

func TestReadPlanform(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "planform.txt")
	text := "# x y chord\n0 1.03 2.15\n0.2 4 1.8\n0.414 8.14 1.24\n"
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))

	les, chords, err := ReadPlanform(fname)
	require.NoError(t, err)
	assert.Equal(t, []geom.Vec2{{0, 1.03}, {0.2, 4}, {0.414, 8.14}}, les)
	assert.Equal(t, []float64{2.15, 1.8, 1.24}, chords)

	require.NoError(t, os.WriteFile(fname, []byte("0 0 1\n"), 0644))
	_, _, err = ReadPlanform(fname)
	assert.True(t, errors.Is(err, ErrConfig), "got %v", err)

	_, _, err = ReadPlanform(filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	fname := filepath.Join(t.TempDir(), "govlm.log")

	log, err := NewLoggerTo("info", fname, zapcore.AddSync(buf))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Solved")
	require.NoError(t, log.Sync())

	assert.Contains(t, buf.String(), "Solved")
	assert.NotContains(t, buf.String(), "hidden")

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	msg := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &msg))
	assert.Equal(t, "Solved", msg["msg"])
	assert.Equal(t, "info", msg["level"])

	_, err = NewLoggerTo("loud", "", zapcore.AddSync(buf))
	assert.True(t, errors.Is(err, ErrConfig), "got %v", err)
}

func TestSurfaceLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewLoggerTo("debug", "", zapcore.AddSync(buf))
	require.NoError(t, err)

	s := vlm.NewSurface(log)
	err = s.AddSurface([]geom.Vec2{{0, 0}, {0, 1}}, []float64{1, 1}, 1, 1,
		vlm.SurfaceOptions{Mirror: true})
	require.NoError(t, err)
	_, err = s.Solve(2, 1)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Assembled influence matrix")
	assert.Contains(t, buf.String(), "Solved")
}

func TestWritePanels(t *testing.T) {
	s := bertinSmith(t)
	buf := &bytes.Buffer{}
	require.NoError(t, WritePanels(buf, s.Panels()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+len(s.Panels()))
	assert.Contains(t, lines[0], "Chrd%")
	assert.Contains(t, lines[2], "50.00")
	assert.Contains(t, lines[2], "0.125")
}

func TestWriteResult(t *testing.T) {
	s := bertinSmith(t)
	res, err := s.Solve(1, 1)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResult(buf, res))
	out := buf.String()

	assert.Contains(t, out, "For alpha = 1 degrees:")
	assert.Contains(t, out, "CL =  0.060")
	assert.Equal(t, len(res.Panels)+6, strings.Count(out, "\n"))
}

func TestSweepTable(t *testing.T) {
	s := bertinSmith(t)
	res, err := s.Sweep(-4, 5, 2, 1)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "sweep.txt")
	f, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, WriteSweep(f, res))
	require.NoError(t, f.Close())

	got, err := ReadSweep(fname)
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, got.Alpha)
	for i := range res.CL {
		assert.InDelta(t, res.CL[i], got.CL[i], 1e-7, "%d)", i)
		assert.InDelta(t, res.CD[i], got.CD[i], 1e-7, "%d)", i)
	}
}

func nonEmptyFile(t *testing.T, fname string) {
	t.Helper()
	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlots(t *testing.T) {
	dir := t.TempDir()
	s := bertinSmith(t)

	res, err := s.DefaultSweep(1)
	require.NoError(t, err)
	polar := filepath.Join(dir, "polar.png")
	require.NoError(t, PlotSweep(res, polar))
	nonEmptyFile(t, polar)

	mesh := filepath.Join(dir, "mesh.png")
	require.NoError(t, PlotMesh(s.Panels(), mesh))
	nonEmptyFile(t, mesh)

	foil := filepath.Join(dir, "naca2412.png")
	require.NoError(t, PlotAirfoil(airfoil.Default(), 50, foil))
	nonEmptyFile(t, foil)

	assert.Error(t, PlotSweep(&vlm.SweepResult{}, polar))
	assert.Error(t, PlotMesh(nil, mesh))
	assert.Error(t, PlotAirfoil(airfoil.FlatPlate{}, 0, foil))
}
