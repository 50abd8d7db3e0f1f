// SPDX-License-Identifier: MIT

// Package config loads CLI settings from defaults, an optional yaml/toml
// file and LVBRAIN_* environment variables, in increasing precedence.
package config

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvbrain/connectivity"
	"github.com/katalvlaran/lvbrain/summary"
)

// EnvPrefix maps nested keys to environment variables: surrogate.max_radius
// becomes LVBRAIN_SURROGATE_MAX_RADIUS.
const EnvPrefix = "LVBRAIN"

// FormatTable renders summary info as a terminal table.
const FormatTable = "table"

// Settings is the full CLI configuration.
type Settings struct {
	Log       LogSettings       `mapstructure:"log"`
	Model     ModelSettings     `mapstructure:"model"`
	Surrogate SurrogateSettings `mapstructure:"surrogate"`
	Output    OutputSettings    `mapstructure:"output"`
}

// LogSettings selects the log encoding and level.
type LogSettings struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// ModelSettings parameterizes loaded and generated networks.
type ModelSettings struct {
	Speed float64 `mapstructure:"speed"` // mm/ms
}

// SurrogateSettings are the defaults of the surrogate command.
type SurrogateSettings struct {
	Regions     int     `mapstructure:"regions"`
	Motif       string  `mapstructure:"motif"`
	MaxRadius   float64 `mapstructure:"max_radius"`
	Probability float64 `mapstructure:"probability"`
	Seed        int64   `mapstructure:"seed"`
}

// OutputSettings control how results are printed.
type OutputSettings struct {
	Format    string `mapstructure:"format"` // table, json, yaml or toml
	ScaleMode string `mapstructure:"scale_mode"`
}

// SetDefaults registers every key so env overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "warn")

	v.SetDefault("model.speed", connectivity.DefaultSpeed)

	v.SetDefault("surrogate.regions", 74)
	v.SetDefault("surrogate.motif", string(connectivity.MotifRing))
	v.SetDefault("surrogate.max_radius", connectivity.DefaultMaxRadius)
	v.SetDefault("surrogate.probability", 0.5)
	v.SetDefault("surrogate.seed", 0)

	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.scale_mode", string(connectivity.ScaleNone))
}

// New returns a viper instance with defaults and env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load reads path (yaml or toml by extension) on top of the defaults; an
// empty path uses defaults and environment only.
func Load(path string) (*Settings, error) {
	return Read(New(), path)
}

// Read is Load on a caller-prepared viper, for example one with bound flags.
func Read(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks value ranges and enumerations.
func (s *Settings) Validate() error {
	if !(s.Model.Speed > 0) || math.IsInf(s.Model.Speed, 0) {
		return errors.Newf("config: model.speed %g must be finite and > 0", s.Model.Speed)
	}
	if !(s.Surrogate.MaxRadius > 0) || math.IsInf(s.Surrogate.MaxRadius, 0) {
		return errors.Newf("config: surrogate.max_radius %g must be finite and > 0", s.Surrogate.MaxRadius)
	}
	if !(s.Surrogate.Probability >= 0 && s.Surrogate.Probability <= 1) {
		return errors.Newf("config: surrogate.probability %g outside [0,1]", s.Surrogate.Probability)
	}
	if s.Surrogate.Regions < 0 {
		return errors.Newf("config: surrogate.regions %d is negative", s.Surrogate.Regions)
	}
	if _, err := connectivity.ParseMotif(s.Surrogate.Motif); err != nil {
		return errors.Wrap(err, "config: surrogate.motif")
	}
	if _, err := connectivity.ParseScaleMode(s.Output.ScaleMode); err != nil {
		return errors.Wrap(err, "config: output.scale_mode")
	}
	if !strings.EqualFold(s.Output.Format, FormatTable) {
		if _, err := summary.ParseFormat(s.Output.Format); err != nil {
			return errors.Wrap(err, "config: output.format")
		}
	}

	return nil
}
