// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"fmt"
	"math"
)

// Config tunes the layer mix and the final shaping.
type Config struct {
	PadAmplitude     float64
	SynthAmplitude   float64
	PianoAmplitude   float64
	ReverbAmplitude  float64
	BassAmplitude    float64
	ShimmerAmplitude float64
	RainAmplitude    float64

	// StereoOffset is multiplied by the channel index and shifts layer
	// phases so the channels differ.
	StereoOffset float64
	// Ceiling scales sqrt(envelope) in the final shaping.
	Ceiling float64

	// Seed drives GentlePiano, Shimmer and RainDrops.
	Seed uint64
	// RainDrops appends the rain layer after Shimmer.
	RainDrops bool
	// HardLimit clamps the shaped output to [-1, 1].
	HardLimit bool
}

// DefaultConfig returns the standard mix.
func DefaultConfig() Config {
	return Config{
		PadAmplitude:     0.20,
		SynthAmplitude:   0.15,
		PianoAmplitude:   0.12,
		ReverbAmplitude:  0.10,
		BassAmplitude:    0.08,
		ShimmerAmplitude: 0.06,
		RainAmplitude:    0.05,
		StereoOffset:     0.05,
		Ceiling:          0.75,
	}
}

type namedAmplitude struct {
	name  string
	value float64
}

func (c Config) amplitudes() []namedAmplitude {
	return []namedAmplitude{
		{"pad", c.PadAmplitude},
		{"synth", c.SynthAmplitude},
		{"piano", c.PianoAmplitude},
		{"reverb", c.ReverbAmplitude},
		{"bass", c.BassAmplitude},
		{"shimmer", c.ShimmerAmplitude},
		{"rain", c.RainAmplitude},
	}
}

// Validate checks that every value is finite and amplitudes are not negative.
func (c Config) Validate() error {
	for _, a := range c.amplitudes() {
		if a.value < 0 || !finite(a.value) {
			return fmt.Errorf("%w: %s amplitude %v", ErrInvalidConfig, a.name, a.value)
		}
	}

	if !finite(c.StereoOffset) {
		return fmt.Errorf("%w: stereo offset %v", ErrInvalidConfig, c.StereoOffset)
	}

	if c.Ceiling <= 0 || !finite(c.Ceiling) {
		return fmt.Errorf("%w: ceiling %v", ErrInvalidConfig, c.Ceiling)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
