// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/zenify/analysis"
)

const twoPi = 2 * math.Pi

// Rand is the randomness the stochastic layers need.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Input is everything a layer reads besides the buffer it writes.
type Input struct {
	Envelope   analysis.Track
	Pitch      analysis.Track
	SampleRate int
	Amplitude  float64
	// Offset shifts LFO and oscillator phase per output channel.
	Offset float64
}

func (in Input) ok(buf []float64) bool {
	return len(buf) > 0 && in.SampleRate > 0
}

// Layer renders one sound source into buf.
type Layer interface {
	Name() string
	Render(buf []float64, in Input)
}

const (
	NameAmbientPad  = "ambient-pad"
	NameSoftSynth   = "soft-synth"
	NameGentlePiano = "gentle-piano"
	NameReverbTail  = "reverb-tail"
	NameSubBass     = "sub-bass"
	NameShimmer     = "shimmer"
	NameRainDrops   = "rain-drops"
)
