// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of one zenify run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/zenify"
	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/compose"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the composer mix plus the I/O settings around it.
type Config struct {
	compose.Config

	Input  string
	Output string
	// Format names the output encoder, see zenify.OutputFormats.
	Format string
	// Rate resamples the input before analysis when positive.
	Rate int
	// Downmix averages all input channels instead of keeping the first.
	Downmix bool

	LogLevel string
	Report   bool
}

// Default returns the standard mix writing WAV.
func Default() Config {
	return Config{
		Config:   compose.DefaultConfig(),
		Format:   "wav",
		LogLevel: "info",
	}
}

// Validate checks the whole configuration, the mix included.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("%w: no input file", ErrInvalidConfig)
	}
	if _, err := zenify.EncoderFor(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: rate %d", ErrInvalidConfig, c.Rate)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Output != "" && filepath.Clean(c.Output) == filepath.Clean(c.Input) {
		return fmt.Errorf("%w: output would overwrite the input", ErrInvalidConfig)
	}
	return nil
}

// OutputPath is Output when set, otherwise the input path with its
// extension replaced by ".zen.<format>".
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	base := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
	return base + ".zen." + strings.ToLower(c.Format)
}

// LoadOptions maps the input settings onto audio.LoadOptions.
func (c Config) LoadOptions() audio.LoadOptions {
	opts := audio.LoadOptions{TargetRate: c.Rate}
	if c.Downmix {
		opts.Mode = audio.Average
	}
	return opts
}

// Options builds the zenify.Options for this run.
func (c Config) Options(log logrus.FieldLogger) zenify.Options {
	return zenify.Options{
		Compose: c.Config,
		Load:    c.LoadOptions(),
		Logger:  log,
	}
}
