// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// SignalBuffer is a read-only view over one channel of recorded samples.
// The zero value is an empty buffer without a sample rate and fails Validate.
type SignalBuffer struct {
	samples    []float32
	sampleRate int
}

// NewSignalBuffer copies samples into a SignalBuffer. length is the
// declared sample count and must match len(samples).
func NewSignalBuffer(samples []float32, sampleRate, length int) (SignalBuffer, error) {
	if sampleRate <= 0 {
		return SignalBuffer{}, fmt.Errorf("%w: sample rate %d", ErrInvalidInput, sampleRate)
	}
	if length != len(samples) {
		return SignalBuffer{}, fmt.Errorf("%w: declared length %d, got %d samples", ErrInvalidInput, length, len(samples))
	}
	for i, s := range samples {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			return SignalBuffer{}, fmt.Errorf("%w: non-finite sample at %d", ErrInvalidInput, i)
		}
	}

	owned := make([]float32, len(samples))
	copy(owned, samples)

	return SignalBuffer{samples: owned, sampleRate: sampleRate}, nil
}

// Validate reports whether the buffer can be processed.
func (s SignalBuffer) Validate() error {
	if s.sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidInput, s.sampleRate)
	}
	return nil
}

func (s SignalBuffer) SampleRate() int { return s.sampleRate }
func (s SignalBuffer) Len() int        { return len(s.samples) }

// At returns sample i. It panics when i is out of range, like a slice.
func (s SignalBuffer) At(i int) float32 { return s.samples[i] }

// Duration in seconds.
func (s SignalBuffer) Duration() float64 {
	if s.sampleRate <= 0 {
		return 0
	}
	return float64(len(s.samples)) / float64(s.sampleRate)
}

// OutputLength is floor(duration * sampleRate). The small bias keeps the
// round trip through seconds from losing the last sample.
func (s SignalBuffer) OutputLength() int {
	return int(math.Floor(s.Duration()*float64(s.sampleRate) + 1e-6))
}

// Copy returns a fresh slice holding the samples.
func (s SignalBuffer) Copy() []float32 {
	out := make([]float32, len(s.samples))
	copy(out, s.samples)
	return out
}
