// SPDX-License-Identifier: EPL-2.0

package analysis

// movingAverage smooths values with a symmetric window of the given radius.
// Edge positions average only the neighbours that exist.
func movingAverage(values []float64, radius int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	// prefix[i] holds the sum of values[:i].
	prefix := make([]float64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}

	last := len(values) - 1
	for i := range values {
		lo := max(0, i-radius)
		hi := min(last, i+radius)
		out[i] = (prefix[hi+1] - prefix[lo]) / float64(hi-lo+1)
	}

	return out
}
