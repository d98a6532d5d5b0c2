// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/zenify/utils"
)

// lowPassAlpha is the one-pole coefficient applied before downsampling.
const lowPassAlpha = 0.5

// Resample converts a fully buffered mono signal from srcRate to dstRate
// with Catmull-Rom interpolation. Output length is floor(len * dst / src).
// Downsampling runs a one-pole low-pass first to tame aliasing.
func Resample(samples []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}

	if srcRate == dstRate || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	src := samples
	if srcRate > dstRate {
		src = make([]float32, len(samples))
		state := samples[0]
		for i, x := range samples {
			state = lowPassAlpha*x + (1-lowPassAlpha)*state
			src[i] = state
		}
	}

	ratio := float64(srcRate) / float64(dstRate)
	n := int(int64(len(src)) * int64(dstRate) / int64(srcRate))
	out := make([]float32, n)
	last := len(src) - 1

	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for j := range out {
		pos := float64(j) * ratio
		k := int(pos)
		frac := float32(pos - float64(k))
		out[j] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), frac)
	}

	return out, nil
}
