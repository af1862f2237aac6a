// Package config loads command settings from defaults, an optional config
// file, VOTEHIST_* environment variables and command flags, in increasing
// order of precedence.
package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/ory/viper"
	"github.com/spf13/pflag"

	"github.com/leesalminen/votehist/dataset"
	"github.com/leesalminen/votehist/histogram"
	"github.com/leesalminen/votehist/model"
	"github.com/leesalminen/votehist/store"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "VOTEHIST"

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Histogram sources.
const (
	SourceCSV = "csv"
	SourceDB  = "db"
)

// Config is the merged configuration.
type Config struct {
	Dataset    string `mapstructure:"dataset"`
	Field      int    `mapstructure:"field"`
	Column     string `mapstructure:"column"`
	Scale      uint64 `mapstructure:"scale"`
	Marker     string `mapstructure:"marker"`
	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	Source     string `mapstructure:"source"`
	Driver     string `mapstructure:"driver"`
	DSN        string `mapstructure:"dsn"`
	BatchSize  int    `mapstructure:"batch_size"`
	NoTruncate bool   `mapstructure:"no_truncate"`
}

// New returns a viper instance carrying the defaults and reading the
// environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("dataset", dataset.DefaultPath)
	v.SetDefault("field", model.VoteCountColumn)
	v.SetDefault("column", "")
	v.SetDefault("scale", histogram.DefaultScale)
	v.SetDefault("marker", histogram.DefaultMarker)
	v.SetDefault("format", FormatText)
	v.SetDefault("color", false)
	v.SetDefault("source", SourceCSV)
	v.SetDefault("driver", store.Postgres)
	v.SetDefault("dsn", "")
	v.SetDefault("batch_size", 1000)
	v.SetDefault("no_truncate", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds each named flag to the key of the same name, with dashes
// turned into underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil {
			return errors.NotFoundf("flag %q", name)
		}
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// Load reads file, or votehist.{yaml,json,toml} from the working directory
// when file is empty, and returns the validated configuration. Only an
// explicitly named file is required to exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("votehist")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Annotate(err, "reading config")
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Annotate(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Field < 0:
		return errors.NotValidf("field %d", c.Field)
	case c.Scale == 0:
		return errors.NotValidf("scale 0")
	case c.Format != FormatText && c.Format != FormatJSON:
		return errors.NotValidf("format %q", c.Format)
	case c.Source != SourceCSV && c.Source != SourceDB:
		return errors.NotValidf("source %q", c.Source)
	case c.BatchSize <= 0:
		return errors.NotValidf("batch size %d", c.BatchSize)
	}
	return nil
}

// DatasetOptions returns the reader options for the configured columns.
func (c *Config) DatasetOptions() dataset.Options {
	opts := dataset.DefaultOptions()
	opts.Columns.VoteCount = c.Field
	if c.Field != model.VoteCountColumn {
		opts.Columns.Title = -1
	}
	opts.Column = c.Column
	return opts
}

// Renderer returns the report renderer for the configured scale, marker and
// colour.
func (c *Config) Renderer() *histogram.Renderer {
	r := histogram.NewRenderer(histogram.DefaultRanges)
	r.Scale = c.Scale
	r.Marker = c.Marker
	if c.Color {
		r.WithColor()
	}
	return r
}
