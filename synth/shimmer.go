// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	shimmerProbability = 0.005
	shimmerMinSeconds  = 0.1
	shimmerSpanSeconds = 0.2
	shimmerMinHz       = 2000.0
	shimmerSpanHz      = 2000.0
	shimmerDecay       = 10.0
)

// Shimmer sprinkles short high sparkles, more of them when it is loud.
type Shimmer struct {
	rng Rand
}

// NewShimmer returns a shimmer layer drawing from rng. A nil rng makes the
// layer silent.
func NewShimmer(rng Rand) *Shimmer {
	return &Shimmer{rng: rng}
}

func (*Shimmer) Name() string { return NameShimmer }

func (s *Shimmer) Render(buf []float64, in Input) {
	if !in.ok(buf) || s.rng == nil {
		return
	}

	n := len(buf)
	sr := float64(in.SampleRate)

	for i := range buf {
		env := in.Envelope.Sample(i, n)
		if env <= 0 {
			continue
		}
		if s.rng.Float64() >= shimmerProbability*env {
			continue
		}

		dur := shimmerMinSeconds + shimmerSpanSeconds*s.rng.Float64()
		freq := shimmerMinHz + shimmerSpanHz*s.rng.Float64()
		gain := in.Amplitude * env
		rate := shimmerDecay / dur

		length := min(int(dur*sr), n-i)
		for j := range length {
			t := float64(j) / sr
			shape := math.Sin(math.Pi*t/dur) * math.Exp(-rate*t)
			buf[i+j] += math.Sin(twoPi*freq*t+in.Offset) * shape * gain
		}
	}
}
