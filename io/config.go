package io

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/vlm"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/gcfg.v1"
)

const ExampleWingFile = `[Wing]

#######################
# Required Parameters #
#######################

# Sections of the wing, listed from root to tip. Each section is given by the
# x and y coordinates of its leading edge and its chord length. x runs
# downstream along the chord and y runs along the span. At least two sections
# are required, and consecutive sections are joined by a trapezoidal segment.
LeadingEdgeX = 0
LeadingEdgeY = 1.03
Chord = 2.15

LeadingEdgeX = 0.414
LeadingEdgeY = 8.14
Chord = 1.24

# Number of panels along the chord and along the span of each segment.
Chordwise = 4
Spanwise = 3

#######################
# Optional Parameters #
#######################

# Alternative way of specifying sections: a text file with one section per
# line and three columns, x y chord. Lines starting with # are ignored.
# Relative paths are relative to this file.
# Planform = path/to/planform.txt

# Section airfoil. Either a NACA 4-digit designation or "flat". Default is
# NACA 2412.
# Airfoil = 2412

# Alternative way of specifying the section: a text file with the columns x z
# giving the camber line, normalized by the chord, over 0 <= x <= 1. Takes
# precedence over Airfoil. Relative paths are relative to this file.
# CamberFile = path/to/camber.txt

# Adds the reflection of the wing across y = 0. Default is true.
# Mirror = true

# Freestream density and speed. Defaults are 1.225 and 1.
# Density = 1.225
# Velocity = 1

# LogFile = govlm.log
# LogLevel = info

[Solve]

# Angle of attack in degrees.
Alpha = 2

[Sweep]

# Angles of attack in degrees, AlphaStart <= alpha < AlphaEnd. Defaults are
# -15, 15 and 2.
# AlphaStart = -15
# AlphaEnd = 15
# AlphaStep = 2

# Writes CL and CD against alpha to the given image file.
# Plot = polar.png`
)

// ErrConfig is returned for config files with invalid or missing values.
var ErrConfig = errors.New("io: invalid config")

type WingConfig struct {
	// Required
	LeadingEdgeX, LeadingEdgeY, Chord []float64
	Chordwise, Spanwise               int

	// Optional
	Planform          string
	Airfoil           string
	CamberFile        string
	Mirror            bool
	Density, Velocity float64
	LogFile, LogLevel string
}

type SolveConfig struct {
	Alpha float64
}

type SweepConfig struct {
	AlphaStart, AlphaEnd, AlphaStep float64
	Plot                            string
}

type ConfigWrapper struct {
	Wing  WingConfig
	Solve SolveConfig
	Sweep SweepConfig
}

func DefaultConfigWrapper() *ConfigWrapper {
	return &ConfigWrapper{
		Wing: WingConfig{
			Airfoil: "2412", Mirror: true,
			Density: vlm.DefaultDensity, Velocity: 1,
			LogLevel: "info",
		},
		Sweep: SweepConfig{
			AlphaStart: vlm.DefaultSweepStart,
			AlphaEnd:   vlm.DefaultSweepEnd,
			AlphaStep:  vlm.DefaultSweepStep,
		},
	}
}

// ReadConfig reads and checks the config file fname. Relative Planform and
// CamberFile paths are taken to be relative to the directory containing
// fname.
func ReadConfig(fname string) (*ConfigWrapper, error) {
	con := DefaultConfigWrapper()
	if err := gcfg.ReadFileInto(con, fname); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfig, err.Error())
	}

	for _, path := range []*string{&con.Wing.Planform, &con.Wing.CamberFile} {
		if *path != "" && !filepath.IsAbs(*path) {
			*path = filepath.Join(filepath.Dir(fname), *path)
		}
	}

	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return con, nil
}

// ParseConfig reads and checks a config from the contents of a config file.
func ParseConfig(text string) (*ConfigWrapper, error) {
	con := DefaultConfigWrapper()
	if err := gcfg.ReadStringInto(con, text); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfig, err.Error())
	}
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *ConfigWrapper) CheckInit() error {
	if err := con.Wing.CheckInit(); err != nil {
		return err
	}
	return con.Sweep.CheckInit()
}

func (con *WingConfig) ValidSections() bool {
	if con.Planform != "" {
		return len(con.LeadingEdgeX) == 0 &&
			len(con.LeadingEdgeY) == 0 && len(con.Chord) == 0
	}
	n := len(con.Chord)
	return n >= 2 && len(con.LeadingEdgeX) == n && len(con.LeadingEdgeY) == n
}
func (con *WingConfig) ValidChordwise() bool {
	return con.Chordwise > 0
}
func (con *WingConfig) ValidSpanwise() bool {
	return con.Spanwise > 0
}
func (con *WingConfig) ValidDensity() bool {
	return con.Density > 0
}
func (con *WingConfig) ValidVelocity() bool {
	return con.Velocity > 0
}
func (con *WingConfig) ValidLogLevel() bool {
	_, err := zapcore.ParseLevel(con.LogLevel)
	return err == nil
}

func (con *WingConfig) CheckInit() error {
	switch {
	case !con.ValidSections():
		if con.Planform != "" {
			return fmt.Errorf("%w: Wing sets both Planform and LeadingEdgeX/"+
				"LeadingEdgeY/Chord", ErrConfig)
		}
		return fmt.Errorf("%w: Wing needs at least two sections with the same "+
			"number of LeadingEdgeX, LeadingEdgeY and Chord values, but got "+
			"%d, %d and %d", ErrConfig, len(con.LeadingEdgeX),
			len(con.LeadingEdgeY), len(con.Chord))
	case !con.ValidChordwise():
		return fmt.Errorf("%w: Wing.Chordwise must be positive, but is %d",
			ErrConfig, con.Chordwise)
	case !con.ValidSpanwise():
		return fmt.Errorf("%w: Wing.Spanwise must be positive, but is %d",
			ErrConfig, con.Spanwise)
	case !con.ValidDensity():
		return fmt.Errorf("%w: Wing.Density must be positive, but is %g",
			ErrConfig, con.Density)
	case !con.ValidVelocity():
		return fmt.Errorf("%w: Wing.Velocity must be positive, but is %g",
			ErrConfig, con.Velocity)
	case !con.ValidLogLevel():
		return fmt.Errorf("%w: Wing.LogLevel '%s' not recognized",
			ErrConfig, con.LogLevel)
	}

	if _, err := airfoil.Parse(con.Airfoil); err != nil {
		return fmt.Errorf("%w: Wing.Airfoil: %s", ErrConfig, err.Error())
	}
	con.LogLevel = strings.ToLower(con.LogLevel)
	return nil
}

func (con *SweepConfig) CheckInit() error {
	if !(con.AlphaStep > 0) {
		return fmt.Errorf("%w: Sweep.AlphaStep must be positive, but is %g",
			ErrConfig, con.AlphaStep)
	} else if con.AlphaStart >= con.AlphaEnd {
		return fmt.Errorf("%w: Sweep.AlphaStart (%g) must be smaller than "+
			"Sweep.AlphaEnd (%g)", ErrConfig, con.AlphaStart, con.AlphaEnd)
	}
	return nil
}

// Sections returns the leading edges and chords of the wing's sections,
// reading them from the planform file if one was given.
func (con *WingConfig) Sections() ([]geom.Vec2, []float64, error) {
	if con.Planform != "" {
		return ReadPlanform(con.Planform)
	}

	les := make([]geom.Vec2, len(con.Chord))
	for i := range les {
		les[i] = geom.Vec2{con.LeadingEdgeX[i], con.LeadingEdgeY[i]}
	}
	chords := append([]float64{}, con.Chord...)
	return les, chords, nil
}

// Profile returns the wing's section airfoil.
func (con *WingConfig) Profile() (airfoil.Profile, error) {
	if con.CamberFile != "" {
		camber, err := ReadCamber(con.CamberFile)
		if err != nil {
			return nil, err
		}
		return camber, nil
	}
	return airfoil.Parse(con.Airfoil)
}

// Surface meshes the wing described by con.
func (con *WingConfig) Surface(log *zap.Logger) (*vlm.Surface, error) {
	les, chords, err := con.Sections()
	if err != nil {
		return nil, err
	}
	profile, err := con.Profile()
	if err != nil {
		return nil, err
	}

	s := vlm.NewSurface(log)
	s.Density = con.Density
	err = s.AddSurface(les, chords, con.Chordwise, con.Spanwise,
		vlm.SurfaceOptions{Mirror: con.Mirror, Camber: profile})
	if err != nil {
		return nil, err
	}
	return s, nil
}
