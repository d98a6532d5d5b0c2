// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	pianoThreshold   = 0.4
	pianoProbability = 0.001
	pianoMinSeconds  = 2.0
	pianoDecay       = 1.2
)

var (
	pianoPartials = [4]float64{1, 2.01, 3.02, 4.03}
	pianoGains    = [4]float64{0.6, 0.25, 0.1, 0.05}
)

// GentlePiano scatters decaying bell tones while the recording is loud.
type GentlePiano struct {
	rng Rand
}

// NewGentlePiano returns a piano layer drawing from rng. A nil rng makes
// the layer silent.
func NewGentlePiano(rng Rand) *GentlePiano {
	return &GentlePiano{rng: rng}
}

func (*GentlePiano) Name() string { return NameGentlePiano }

func (p *GentlePiano) Render(buf []float64, in Input) {
	if !in.ok(buf) || p.rng == nil {
		return
	}

	n := len(buf)
	for i := range buf {
		env := in.Envelope.Sample(i, n)
		if env <= pianoThreshold {
			continue
		}
		if p.rng.Float64() >= pianoProbability*env {
			continue
		}

		freq := pianoScale[p.rng.IntN(len(pianoScale))]
		dur := pianoMinSeconds + p.rng.Float64()
		strike(buf[i:], freq, dur, in.Amplitude*env, in.SampleRate, in.Offset)
	}
}

// strike adds one bell note at the start of dst.
func strike(dst []float64, freq, dur, gain float64, sampleRate int, phase float64) {
	sr := float64(sampleRate)
	length := min(int(dur*sr), len(dst))
	step := math.Exp(-pianoDecay / sr)
	decay := 1.0

	for j := range length {
		t := float64(j) / sr
		v := 0.0
		for k, r := range pianoPartials {
			v += pianoGains[k] * math.Sin(twoPi*freq*r*t+phase)
		}
		dst[j] += v * decay * gain
		decay *= step
	}
}
