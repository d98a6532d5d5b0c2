// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	want := []float64{0.20, 0.15, 0.12, 0.10, 0.08, 0.06}
	got := []float64{cfg.PadAmplitude, cfg.SynthAmplitude, cfg.PianoAmplitude, cfg.ReverbAmplitude, cfg.BassAmplitude, cfg.ShimmerAmplitude}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("amplitude %d = %v, want %v", i, got[i], want[i])
		}
	}
	if cfg.StereoOffset != 0.05 || cfg.Ceiling != 0.75 {
		t.Errorf("offset %v ceiling %v", cfg.StereoOffset, cfg.Ceiling)
	}
	if cfg.RainDrops || cfg.HardLimit {
		t.Error("optional behaviour enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"zero amplitude", func(c *Config) { c.ShimmerAmplitude = 0 }, true},
		{"negative amplitude", func(c *Config) { c.PadAmplitude = -0.1 }, false},
		{"nan amplitude", func(c *Config) { c.BassAmplitude = math.NaN() }, false},
		{"inf rain", func(c *Config) { c.RainAmplitude = math.Inf(1) }, false},
		{"negative offset", func(c *Config) { c.StereoOffset = -0.05 }, true},
		{"nan offset", func(c *Config) { c.StereoOffset = math.NaN() }, false},
		{"zero ceiling", func(c *Config) { c.Ceiling = 0 }, false},
		{"large ceiling", func(c *Config) { c.Ceiling = 4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Ceiling = -1
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}
