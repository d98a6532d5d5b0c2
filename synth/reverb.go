// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	reverbFeedback = 0.5
	reverbDecay    = 0.8
)

var reverbTapsMs = [4]float64{37, 53, 79, 97}

// TapDelays converts the tap times to whole samples, at least one.
func TapDelays(sampleRate int) [4]int {
	var d [4]int
	for k, ms := range reverbTapsMs {
		d[k] = max(1, int(math.Floor(ms*float64(sampleRate)/1000)))
	}
	return d
}

// TapGains returns amplitude * feedback * decay^k for each tap.
func TapGains(amplitude float64) [4]float64 {
	var g [4]float64
	for k := range g {
		g[k] = amplitude * reverbFeedback * math.Pow(reverbDecay, float64(k))
	}
	return g
}

// ReverbTail is a four tap feedback delay that reads the buffer it writes.
// Samples are processed in increasing order so every echo is itself echoed.
// It ignores the envelope.
type ReverbTail struct{}

func (ReverbTail) Name() string { return NameReverbTail }

func (ReverbTail) Render(buf []float64, in Input) {
	if !in.ok(buf) {
		return
	}

	delays := TapDelays(in.SampleRate)
	gains := TapGains(in.Amplitude)

	for i := range buf {
		acc := 0.0
		for k, d := range delays {
			if j := i - d; j >= 0 {
				acc += buf[j] * gains[k]
			}
		}
		buf[i] += acc
	}
}
