// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads lanesinfo settings from defaults, an optional YAML
// file, LANES_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-lanes/internal/selfcheck"
)

// Config represents the lanesinfo configuration.
type Config struct {
	SelfCheck SelfCheckConfig `mapstructure:"selfcheck"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type SelfCheckConfig struct {
	Iterations int    `mapstructure:"iterations"`
	Seed       uint64 `mapstructure:"seed"`
	Widths     []int  `mapstructure:"widths"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		SelfCheck: SelfCheckConfig{
			Iterations: 200,
			Seed:       1,
			Widths:     append([]int(nil), selfcheck.SupportedWidths...),
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"iterations": "selfcheck.iterations",
	"seed":       "selfcheck.seed",
	"widths":     "selfcheck.widths",
	"log-level":  "logging.level",
}

// Load reads the configuration. cfgFile may be empty, in which case
// ./lanes.yaml is used if present. Flags in fs that appear in flagKeys
// override every other source when set.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	cfg := Default()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("lanes")
	}

	v.SetEnvPrefix("LANES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SelfCheck.Iterations <= 0 {
		return errors.New("selfcheck.iterations must be positive")
	}
	if bad := lo.Without(c.SelfCheck.Widths, selfcheck.SupportedWidths...); len(bad) > 0 {
		return fmt.Errorf("selfcheck.widths: unsupported %v, must be among %v", bad, selfcheck.SupportedWidths)
	}
	validLevels := []string{"debug", "info", "warn", "error"}
	if !lo.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("selfcheck.iterations", cfg.SelfCheck.Iterations)
	v.SetDefault("selfcheck.seed", cfg.SelfCheck.Seed)
	v.SetDefault("selfcheck.widths", cfg.SelfCheck.Widths)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
