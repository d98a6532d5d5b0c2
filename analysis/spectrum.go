// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum holds FFT magnitudes of a Hann-windowed block.
type Spectrum struct {
	mags  []float64
	binHz float64
}

// NewSpectrum analyses samples recorded at sampleRate. Blocks shorter than
// two samples give an empty Spectrum.
func NewSpectrum(samples []float64, sampleRate int) Spectrum {
	n := len(samples)
	if n < 2 || sampleRate <= 0 {
		return Spectrum{}
	}

	windowed := make([]float64, n)
	for i, s := range samples {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		windowed[i] = s * w
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	return Spectrum{mags: mags, binHz: float64(sampleRate) / float64(n)}
}

// BinWidth is the frequency resolution in Hz.
func (s Spectrum) BinWidth() float64 { return s.binHz }

// MagnitudeAt returns the strongest magnitude within one bin of freq.
func (s Spectrum) MagnitudeAt(freq float64) float64 {
	if len(s.mags) == 0 || freq < 0 {
		return 0
	}

	center := int(math.Round(freq / s.binHz))
	best := 0.0
	for b := center - 1; b <= center+1; b++ {
		if b >= 0 && b < len(s.mags) && s.mags[b] > best {
			best = s.mags[b]
		}
	}

	return best
}

// Dominant returns the centre frequency of the strongest bin in
// [minHz, maxHz], or 0 when the range holds no bins.
func (s Spectrum) Dominant(minHz, maxHz float64) float64 {
	if len(s.mags) == 0 {
		return 0
	}

	lo := max(0, int(math.Ceil(minHz/s.binHz)))
	hi := min(len(s.mags)-1, int(math.Floor(maxHz/s.binHz)))
	best, bestBin := -1.0, -1
	for b := lo; b <= hi; b++ {
		if s.mags[b] > best {
			best, bestBin = s.mags[b], b
		}
	}
	if bestBin < 0 {
		return 0
	}

	return float64(bestBin) * s.binHz
}
