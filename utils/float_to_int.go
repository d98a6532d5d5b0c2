// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 converts a nominal [-1, 1] sample to 16-bit PCM as
// clamp(round(x * 32767), -32768, 32767).
func Float64ToInt16(x float64) int16 {
	v := math.Round(x * math.MaxInt16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if math.IsNaN(v) {
		return 0
	}

	return int16(v)
}

// Int16ToFloat32 maps a 16-bit PCM sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int16LEToFloat32 decodes little-endian 16-bit PCM bytes into dst and
// returns the number of samples written. A trailing odd byte is ignored.
func Int16LEToFloat32(dst []float32, src []byte) int {
	n := min(len(src)/2, len(dst))
	for i := range n {
		v := int16(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
		dst[i] = Int16ToFloat32(v)
	}

	return n
}

// IntScale returns the divisor that maps signed integer PCM of the given
// bit depth into [-1, 1). Unknown depths fall back to 16-bit.
func IntScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
