// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	padDetune     = 1.01
	padDetuneGain = 0.5
	padOctaveGain = 0.3
	padLFOHz      = 0.2
	padLFODepth   = 0.3
	padLFOCenter  = 1 - padLFODepth
)

// AmbientPad plays the chord progression, one chord per quarter of the
// buffer, with a detuned voice and an octave per note under a slow LFO.
type AmbientPad struct{}

func (AmbientPad) Name() string { return NameAmbientPad }

func (AmbientPad) Render(buf []float64, in Input) {
	if !in.ok(buf) {
		return
	}

	n := len(buf)
	sr := float64(in.SampleRate)

	for i := range buf {
		env := in.Envelope.Sample(i, n)
		if env == 0 {
			continue
		}

		t := float64(i) / sr
		chord := chordTable[min(i*len(chordTable)/n, len(chordTable)-1)]

		v := 0.0
		for _, f := range chord {
			v += math.Sin(twoPi*f*t) +
				padDetuneGain*math.Sin(twoPi*f*padDetune*t) +
				padOctaveGain*math.Sin(twoPi*f*2*t)
		}
		v /= float64(len(chord))

		lfo := padLFOCenter + padLFODepth*math.Sin(twoPi*padLFOHz*t+in.Offset)
		buf[i] += v * lfo * in.Amplitude * env
	}
}
