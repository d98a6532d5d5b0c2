// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	synthBaseHz    = 220.0
	synthPitchStep = 100.0
	synthAttack    = 0.1
	synthRetrigger = 0.5
)

// NoteFrequency quantises an estimated pitch onto the pentatonic scale
// above 220 Hz: ratio index floor(pitch / 100) mod 5.
func NoteFrequency(pitch float64) float64 {
	idx := int(math.Max(pitch, 0)/synthPitchStep) % len(pentatonicRatios)
	return synthBaseHz * pentatonicRatios[idx]
}

// SoftSynth follows the pitch track with a three-harmonic tone that
// re-attacks every half second.
type SoftSynth struct{}

func (SoftSynth) Name() string { return NameSoftSynth }

func (SoftSynth) Render(buf []float64, in Input) {
	if !in.ok(buf) {
		return
	}

	n := len(buf)
	sr := float64(in.SampleRate)
	phase := in.Offset

	for i := range buf {
		f := NoteFrequency(in.Pitch.Sample(i, n))
		phase = math.Mod(phase+twoPi*f/sr, twoPi)

		env := in.Envelope.Sample(i, n)
		if env == 0 {
			continue
		}

		t := float64(i) / sr
		attack := math.Min(1, math.Mod(t+in.Offset, synthRetrigger)/synthAttack)

		v := math.Sin(phase) + 0.5*math.Sin(2*phase) + 0.25*math.Sin(3*phase)
		buf[i] += v * attack * in.Amplitude * env
	}
}
