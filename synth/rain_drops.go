// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	rainThreshold   = 0.2
	rainProbability = 0.002
	rainSeconds     = 0.05
	rainDecay       = 60.0
)

// RainDrops adds short noise bursts. The composer only uses it when asked.
type RainDrops struct {
	rng Rand
}

// NewRainDrops returns a rain layer drawing from rng. A nil rng makes the
// layer silent.
func NewRainDrops(rng Rand) *RainDrops {
	return &RainDrops{rng: rng}
}

func (*RainDrops) Name() string { return NameRainDrops }

func (r *RainDrops) Render(buf []float64, in Input) {
	if !in.ok(buf) || r.rng == nil {
		return
	}

	n := len(buf)
	sr := float64(in.SampleRate)

	for i := range buf {
		env := in.Envelope.Sample(i, n)
		if env <= rainThreshold {
			continue
		}
		if r.rng.Float64() >= rainProbability*env {
			continue
		}

		gain := in.Amplitude * env
		length := min(int(rainSeconds*sr), n-i)
		for j := range length {
			noise := r.rng.Float64()*2 - 1
			buf[i+j] += noise * math.Exp(-rainDecay*float64(j)/sr) * gain
		}
	}
}
