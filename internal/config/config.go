// Package config loads calculation inputs from defaults, an optional config
// file, GOSLAB_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/slab"
	"github.com/alexiusacademia/goslab/internal/units"
)

// EnvPrefix is prepended to every environment override, e.g. GOSLAB_PARAMS_L3.
const EnvPrefix = "GOSLAB"

// DefaultStore is the dimension store used when none is configured.
const DefaultStore = "config.toml"

type Config struct {
	Preset     string `mapstructure:"preset"`
	Convention string `mapstructure:"convention"`
	Store      string `mapstructure:"store"`

	// Factors override the preset's load factors when non-zero.
	Factors struct {
		Permanent float64 `mapstructure:"permanent"`
		Live      float64 `mapstructure:"live"`
	} `mapstructure:"factors"`

	// Grades set fc/fy from the material tables when non-empty.
	Grades struct {
		Concrete string `mapstructure:"concrete"`
		Steel    string `mapstructure:"steel"`
	} `mapstructure:"grades"`

	Params slab.Params `mapstructure:"params"`
}

// Load reads path (if not empty) and the environment, then applies the
// changed flags of flagSet. A .env file in the working directory is loaded first
// when present.
func Load(path string, flagSet *pflag.FlagSet) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flagSet != nil {
		if err := bindFlags(v, flagSet); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Options resolves the preset and applies the overrides.
func (c Config) Options() (slab.Options, error) {
	opts, err := slab.LookupPreset(c.Preset)
	if err != nil {
		return slab.Options{}, err
	}
	if c.Convention != "" {
		if opts.Convention, err = units.ParseConvention(c.Convention); err != nil {
			return slab.Options{}, err
		}
	}
	if c.Factors.Permanent > 0 || c.Factors.Live > 0 {
		g, q := opts.Combination.Permanent, opts.Combination.Live
		if c.Factors.Permanent > 0 {
			g = c.Factors.Permanent
		}
		if c.Factors.Live > 0 {
			q = c.Factors.Live
		}
		opts.Combination = gb.Custom(g, q)
	}
	return opts, nil
}

// Inputs returns the calculation parameters with material grades applied.
func (c Config) Inputs() (slab.Params, error) {
	p := c.Params
	if c.Grades.Concrete != "" {
		fc, err := gb.ConcreteStrength(c.Grades.Concrete)
		if err != nil {
			return slab.Params{}, err
		}
		p.Fc = fc
	}
	if c.Grades.Steel != "" {
		fy, err := gb.SteelStrength(c.Grades.Steel)
		if err != nil {
			return slab.Params{}, err
		}
		p.Fy = fy
	}
	return p, nil
}

// StoreLocation returns the configured store or DefaultStore.
func (c Config) StoreLocation() string {
	if c.Store == "" {
		return DefaultStore
	}
	return c.Store
}
