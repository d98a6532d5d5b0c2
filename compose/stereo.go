// SPDX-License-Identifier: EPL-2.0

package compose

import "math"

// Stereo is the rendered piece. Composer never touches it after returning.
type Stereo struct {
	Left       []float64
	Right      []float64
	SampleRate int
}

func (*Stereo) Channels() int { return 2 }

// Len is the number of samples per channel.
func (s *Stereo) Len() int { return len(s.Left) }

// Duration in seconds.
func (s *Stereo) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(s.Len()) / float64(s.SampleRate)
}

// Peak is the largest absolute sample over both channels.
func (s *Stereo) Peak() float64 {
	peak := 0.0
	for _, ch := range [][]float64{s.Left, s.Right} {
		for _, v := range ch {
			peak = math.Max(peak, math.Abs(v))
		}
	}
	return peak
}
