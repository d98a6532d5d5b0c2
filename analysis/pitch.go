// SPDX-License-Identifier: EPL-2.0

package analysis

import "github.com/ik5/zenify/audio"

// Pitch estimates a coarse fundamental per window from its zero-crossing
// count, (crossings / 2) * (sampleRate / WindowSize), smoothed with radius
// PitchRadius. Values are not clamped.
func Pitch(sig audio.SignalBuffer) Track {
	frames := FrameCount(sig.Len())
	raw := make([]float64, frames)
	binHz := float64(sig.SampleRate()) / WindowSize

	for f := range frames {
		start := f * HopSize
		crossings := 0
		prev := sig.At(start) >= 0
		for j := start + 1; j < start+WindowSize; j++ {
			cur := sig.At(j) >= 0
			if cur != prev {
				crossings++
			}
			prev = cur
		}
		raw[f] = float64(crossings) / 2 * binHz
	}

	return newTrack(movingAverage(raw, PitchRadius))
}
