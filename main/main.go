package main

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/govlm/io"
	"github.com/phil-mansfield/govlm/vlm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// airfoilSamples is the number of chordwise intervals drawn by
// mesh --airfoil-plot.
const airfoilSamples = 100

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "govlm",
		Short:        "govlm computes the lift and drag of thin wings with the vortex lattice method.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(
		&cfgFile, "config", "c", "", "wing config file (see example-config)",
	)

	root.AddCommand(
		newSolveCmd(&cfgFile),
		newSweepCmd(&cfgFile),
		newMeshCmd(&cfgFile),
		newPlotCmd(),
		newExampleConfigCmd(),
	)
	return root
}

// setup reads the config file and builds its logger and wing surface.
func setup(cfgFile string) (*io.ConfigWrapper, *vlm.Surface, *zap.Logger, error) {
	if cfgFile == "" {
		return nil, nil, nil, fmt.Errorf("no config file given, use --config")
	}

	con, err := io.ReadConfig(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := io.NewLogger(con.Wing.LogLevel, con.Wing.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := con.Wing.Surface(log)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("Meshed wing",
		zap.String("config", cfgFile),
		zap.Int("panels", len(s.Panels())),
	)

	return con, s, log, nil
}

func newSolveCmd(cfgFile *string) *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solves the wing at a single angle of attack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, s, log, err := setup(*cfgFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cmd.Flags().Changed("alpha") {
				alpha = con.Solve.Alpha
			}
			res, err := s.Solve(alpha, con.Wing.Velocity)
			if err != nil {
				return err
			}
			log.Info("Solved", zap.Float64("alpha", alpha),
				zap.Float64("residual", res.Residual()))

			return io.WriteResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Float64VarP(
		&alpha, "alpha", "a", 0, "angle of attack in degrees (default [Solve] Alpha)",
	)
	return cmd
}

func newSweepCmd(cfgFile *string) *cobra.Command {
	var plotFile, outFile string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Computes CL and CD over a range of angles of attack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, s, log, err := setup(*cfgFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			sw := con.Sweep
			res, err := s.Sweep(sw.AlphaStart, sw.AlphaEnd, sw.AlphaStep,
				con.Wing.Velocity)
			if err != nil {
				return err
			}

			if outFile == "" {
				err = io.WriteSweep(cmd.OutOrStdout(), res)
			} else {
				err = writeSweepFile(outFile, res)
			}
			if err != nil {
				return err
			}

			if plotFile == "" {
				plotFile = sw.Plot
			}
			if plotFile != "" {
				if err := io.PlotSweep(res, plotFile); err != nil {
					return err
				}
				log.Info("Wrote plot", zap.String("file", plotFile))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(
		&plotFile, "plot", "p", "", "image file for CL and CD (default [Sweep] Plot)",
	)
	cmd.Flags().StringVarP(
		&outFile, "out", "o", "", "table file for the sweep (default stdout)",
	)
	return cmd
}

func writeSweepFile(fname string, res *vlm.SweepResult) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := io.WriteSweep(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newMeshCmd(cfgFile *string) *cobra.Command {
	var plotFile, airfoilFile string

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Prints the panels of the wing's mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, s, log, err := setup(*cfgFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := io.WritePanels(cmd.OutOrStdout(), s.Panels()); err != nil {
				return err
			}

			if plotFile != "" {
				if err := io.PlotMesh(s.Panels(), plotFile); err != nil {
					return err
				}
				log.Info("Wrote plot", zap.String("file", plotFile))
			}

			if airfoilFile != "" {
				profile, err := con.Wing.Profile()
				if err != nil {
					return err
				}
				err = io.PlotAirfoil(profile, airfoilSamples, airfoilFile)
				if err != nil {
					return err
				}
				log.Info("Wrote plot", zap.String("file", airfoilFile))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&plotFile, "plot", "p", "", "image file for the mesh")
	cmd.Flags().StringVar(
		&airfoilFile, "airfoil-plot", "", "image file for the section airfoil",
	)
	return cmd
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot <sweep table> <image>",
		Short: "Plots a sweep table written by sweep --out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := io.ReadSweep(args[0])
			if err != nil {
				return err
			}
			return io.PlotSweep(res, args[1])
		},
	}
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Prints an example wing config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), io.ExampleWingFile)
			return err
		},
	}
}
