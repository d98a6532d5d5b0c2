// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	bassLowHz    = 55.0
	bassSpanHz   = 55.0
	bassPitchMax = 1000.0
	bassLFOHz    = 0.1
)

// BassFrequency maps an estimated pitch linearly into 55-110 Hz,
// saturating at 1 kHz.
func BassFrequency(pitch float64) float64 {
	return bassLowHz + bassSpanHz*math.Min(math.Max(pitch, 0)/bassPitchMax, 1)
}

// SubBass is a single sine under a 0.1 Hz swell.
type SubBass struct{}

func (SubBass) Name() string { return NameSubBass }

func (SubBass) Render(buf []float64, in Input) {
	if !in.ok(buf) {
		return
	}

	n := len(buf)
	sr := float64(in.SampleRate)
	phase := 0.0

	for i := range buf {
		phase = math.Mod(phase+twoPi*BassFrequency(in.Pitch.Sample(i, n))/sr, twoPi)

		env := in.Envelope.Sample(i, n)
		if env == 0 {
			continue
		}

		t := float64(i) / sr
		lfo := 0.5 + 0.5*math.Sin(twoPi*bassLFOHz*t+in.Offset)
		buf[i] += math.Sin(phase) * lfo * in.Amplitude * env
	}
}
