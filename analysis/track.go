// SPDX-License-Identifier: EPL-2.0

package analysis

const (
	// WindowSize is the analysis frame length in samples.
	WindowSize = 2048
	// HopSize is the distance between frame starts.
	HopSize = WindowSize / 4

	EnvelopeRadius = 5
	PitchRadius    = 3
)

// Track is a per-window control signal.
type Track struct {
	Values     []float64
	WindowSize int
	HopSize    int
}

// FrameCount is the number of analysis windows for n input samples:
// max(0, floor((n - WindowSize) / HopSize)).
func FrameCount(n int) int {
	if n <= WindowSize {
		return 0
	}
	return (n - WindowSize) / HopSize
}

func newTrack(values []float64) Track {
	return Track{Values: values, WindowSize: WindowSize, HopSize: HopSize}
}

func (t Track) Len() int { return len(t.Values) }

// Empty reports whether the track has no windows.
func (t Track) Empty() bool { return len(t.Values) == 0 }

// Index maps position pos of a buffer holding total samples onto the track:
// floor(pos / total * Len()), clamped to the last window. It returns -1 for
// an empty track or buffer.
func (t Track) Index(pos, total int) int {
	n := len(t.Values)
	if n == 0 || total <= 0 {
		return -1
	}

	idx := int(float64(pos) / float64(total) * float64(n))
	if idx >= n {
		return n - 1
	}
	if idx < 0 {
		return 0
	}

	return idx
}

// Sample returns the track value aligned with position pos of total, or 0
// when there is no data.
func (t Track) Sample(pos, total int) float64 {
	idx := t.Index(pos, total)
	if idx < 0 {
		return 0
	}
	return t.Values[idx]
}

// Max returns the largest value, 0 for an empty track.
func (t Track) Max() float64 {
	m := 0.0
	for i, v := range t.Values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
