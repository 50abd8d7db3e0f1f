// SPDX-License-Identifier: MIT

package commands

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbrain/archive"
	"github.com/katalvlaran/lvbrain/connectivity"
	"github.com/katalvlaran/lvbrain/logger"
	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/summary"
)

// connOptions are the library options derived from the settings.
func (a *app) connOptions() []connectivity.Option {
	return []connectivity.Option{
		connectivity.WithLogger(logger.Zap()),
		connectivity.WithSpeed(a.settings.Model.Speed),
	}
}

func (a *app) newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Summarize the bundled 76-region connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := connectivity.LoadDefault(a.connOptions()...)
			if err != nil {
				return err
			}
			if err := c.Configure(); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), "Default connectivity ("+connectivity.DefaultDataset+")", c.SummaryInfo())
		},
	}
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH",
		Short: "Load, configure and summarize a zip or HDF5 archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			st, err := os.Stat(path)
			if err != nil {
				return errors.WithSecondaryError(errors.Wrapf(connectivity.ErrDataFormat, "stat %s", path), err)
			}
			c, err := connectivity.FromFile(path, a.connOptions()...)
			if err != nil {
				return err
			}
			if err := c.Configure(); err != nil {
				return err
			}
			logger.Logger.Infow("archive loaded", "path", path, "size", humanize.Bytes(uint64(st.Size())))
			return a.render(cmd.OutOrStdout(), path+" ("+humanize.Bytes(uint64(st.Size()))+")", c.SummaryInfo())
		},
	}
}

func (a *app) newScaleCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "scale PATH",
		Short: "Report weight statistics under a scaling mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = a.settings.Output.ScaleMode
			}
			m, err := connectivity.ParseScaleMode(mode)
			if err != nil {
				return err
			}
			c, err := connectivity.FromFile(args[0], a.connOptions()...)
			if err != nil {
				return err
			}
			if err := c.Configure(); err != nil {
				return err
			}
			w, err := c.ScaledWeights(m)
			if err != nil {
				return err
			}
			s, err := matrix.Describe(w)
			if err != nil {
				return err
			}
			info := summary.Info{
				"Scale mode":                string(m),
				"Scaled weights (max)":      s.Max,
				"Scaled weights (min)":      s.Min,
				"Scaled weights (mean)":     s.Mean,
				connectivity.KeyRegions:     c.NumberOfRegions,
				connectivity.KeyConnections: c.NumberOfConnections,
			}
			return a.render(cmd.OutOrStdout(), "Scaled weights of "+args[0], info)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "scaling mode: none, tract or region")

	return cmd
}

var zipMethods = map[string]uint16{
	"store":   zip.Store,
	"deflate": zip.Deflate,
	"zstd":    archive.MethodZstd,
	"xz":      archive.MethodXZ,
}

func (a *app) newSurrogateCmd() *cobra.Command {
	var (
		motif, out, method, codec string
		seed                      int64
		maxRadius, probability    float64
		undirected, randomWeights bool
	)
	cmd := &cobra.Command{
		Use:   "surrogate [N]",
		Short: "Generate a synthetic connectivity of N regions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings.Surrogate
			n := s.Regions
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.WithSecondaryError(
						errors.Wrapf(connectivity.ErrInvalidArgument, "N %q must be an integer", args[0]), err)
				}
				n = v
			}
			flags := cmd.Flags()
			if !flags.Changed("motif") {
				motif = s.Motif
			}
			if !flags.Changed("max-radius") {
				maxRadius = s.MaxRadius
			}
			if !flags.Changed("probability") {
				probability = s.Probability
			}
			if !flags.Changed("seed") {
				seed = s.Seed
			}

			m, err := connectivity.ParseMotif(motif)
			if err != nil {
				return err
			}
			if !(maxRadius > 0) {
				return errors.Wrapf(connectivity.ErrInvalidArgument, "--max-radius %g must be > 0", maxRadius)
			}
			if !(probability >= 0 && probability <= 1) {
				return errors.Wrapf(connectivity.ErrInvalidArgument, "--probability %g outside [0,1]", probability)
			}
			opts := append(a.connOptions(),
				connectivity.WithMotif(m),
				connectivity.WithMaxRadius(maxRadius),
				connectivity.WithProbability(probability),
				connectivity.WithSeed(seed),
			)
			if undirected {
				opts = append(opts, connectivity.WithUndirected())
			}
			if randomWeights {
				opts = append(opts, connectivity.WithRandomWeights())
			}

			c, err := connectivity.GenerateSurrogate(n, opts...)
			if err != nil {
				return err
			}
			if out != "" {
				zm, ok := zipMethods[method]
				if !ok {
					return errors.Wrapf(connectivity.ErrInvalidArgument, "--method %q: want store, deflate, zstd or xz", method)
				}
				cd, err := archive.ParseCodec(codec)
				if err != nil {
					return errors.WithSecondaryError(errors.Wrap(connectivity.ErrInvalidArgument, "--codec"), err)
				}
				if err := c.SaveZip(out, archive.WithMethod(zm), archive.WithCodec(cd)); err != nil {
					return err
				}
				logger.Logger.Infow("surrogate written", "path", out, "regions", n, "method", method)
			}
			if err := c.Configure(); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), "Surrogate connectivity ("+string(m)+")", c.SummaryInfo())
		},
	}
	f := cmd.Flags()
	f.StringVar(&motif, "motif", string(connectivity.MotifRing), "ring, linear, all-to-all or random")
	f.Int64Var(&seed, "seed", 0, "RNG seed for random motifs and weights")
	f.Float64Var(&maxRadius, "max-radius", connectivity.DefaultMaxRadius, "tract length of every arc (mm)")
	f.Float64Var(&probability, "probability", 0.5, "arc probability of the random motif")
	f.BoolVar(&undirected, "undirected", false, "mirror every arc")
	f.BoolVar(&randomWeights, "random-weights", false, "uniform (0,1] weights instead of 1")
	f.StringVarP(&out, "out", "o", "", "write the raw surrogate to this zip archive")
	f.StringVar(&method, "method", "deflate", "zip method for --out: store, deflate, zstd or xz")
	f.StringVar(&codec, "codec", "none", "member payload codec for --out: none, gzip, xz or zstd")

	return cmd
}
