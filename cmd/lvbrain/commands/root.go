// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the lvbrain CLI.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvbrain/config"
	"github.com/katalvlaran/lvbrain/logger"
)

// app is the state shared by every subcommand of one root.
type app struct {
	v        *viper.Viper
	settings *config.Settings
}

// NewRootCmd builds a fresh command tree. Flags override the config file,
// which overrides LVBRAIN_* environment variables and defaults.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "lvbrain",
		Short: "Brain connectivity archives and spectral datatypes",
		Long: `lvbrain loads, generates and inspects parcellated brain connectivity.

Examples:
  lvbrain default                        # summary of the bundled 76-region network
  lvbrain surrogate 74 --out ring.zip    # write a 74-region ring surrogate
  lvbrain info connectivity_68.zip       # configure an archive and summarize it
  lvbrain scale connectivity_68.zip --mode region
  lvbrain spectral fourier --segment-length 100 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml or toml)")
	pf.Bool("log-json", false, "emit JSON logs on stderr")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	pf.StringP("format", "f", "", "output format: table, json, yaml or toml")
	pf.Float64("speed", 0, "conduction speed in mm/ms")

	root.AddCommand(
		a.newDefaultCmd(),
		a.newSurrogateCmd(),
		a.newInfoCmd(),
		a.newScaleCmd(),
		a.newSpectralCmd(),
	)

	return root
}

// setup loads settings and initializes the global logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"log.json":      "log-json",
		"log.level":     "log-level",
		"output.format": "format",
		"model.speed":   "speed",
	} {
		if f := flags.Lookup(name); f != nil && f.Changed {
			if err := a.v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind --%s", name)
			}
		}
	}

	path, _ := flags.GetString("config")
	s, err := config.Read(a.v, path)
	if err != nil {
		return err
	}
	if n, _ := flags.GetCount("verbose"); n > 0 {
		s.Log.Level = logger.VerbosityToLevel(n).String()
	}
	if err := logger.Initialize(s.Log.JSON, s.Log.Level); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	a.settings = s
	logger.Logger.Debugw("settings loaded", "config", path, "format", s.Output.Format)

	return nil
}
