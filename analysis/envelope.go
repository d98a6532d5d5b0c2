// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"github.com/ik5/zenify/audio"
)

// Envelope computes the mean absolute amplitude of every analysis window
// and smooths the result with radius EnvelopeRadius.
func Envelope(sig audio.SignalBuffer) Track {
	frames := FrameCount(sig.Len())
	raw := make([]float64, frames)

	for f := range frames {
		start := f * HopSize
		sum := 0.0
		for j := start; j < start+WindowSize; j++ {
			sum += math.Abs(float64(sig.At(j)))
		}
		raw[f] = sum / WindowSize
	}

	return newTrack(movingAverage(raw, EnvelopeRadius))
}
