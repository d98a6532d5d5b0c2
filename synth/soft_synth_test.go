// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/ik5/zenify/analysis"
)

func TestNoteFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pitch float64
		want  float64
	}{
		{0, 220},
		{99, 220},
		{100, 247.5},
		{250, 275},
		{399, 330},
		{450, 220 * 5.0 / 3},
		{500, 220},
		{1234, 275},
		{-50, 220},
	}

	for _, tt := range tests {
		if got := NoteFrequency(tt.pitch); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NoteFrequency(%v) = %v, want %v", tt.pitch, got, tt.want)
		}
	}
}

func TestSoftSynth_FollowsPitch(t *testing.T) {
	t.Parallel()

	const sr = 8000
	buf := make([]float64, 2*sr)
	SoftSynth{}.Render(buf, Input{
		Envelope:   constTrack(1, 20),
		Pitch:      constTrack(150, 20),
		SampleRate: sr,
		Amplitude:  0.15,
	})

	dom := analysis.NewSpectrum(buf, sr).Dominant(100, 1000)
	if math.Abs(dom-247.5) > 3 {
		t.Errorf("dominant = %v Hz, want ~247.5", dom)
	}
}

func TestSoftSynth_AttackRamp(t *testing.T) {
	t.Parallel()

	const sr = 1000
	buf := make([]float64, sr)
	SoftSynth{}.Render(buf, Input{Envelope: constTrack(1, 4), Pitch: constTrack(0, 4), SampleRate: sr, Amplitude: 1})

	// The first 10 ms of each half-second are well below full level.
	for _, start := range []int{0, 500} {
		for i := start; i < start+10; i++ {
			if math.Abs(buf[i]) > 0.2 {
				t.Errorf("sample %d = %v during attack", i, buf[i])
			}
		}
	}
}

func TestSoftSynth_Deterministic(t *testing.T) {
	t.Parallel()

	in := Input{Envelope: constTrack(0.5, 30), Pitch: constTrack(320, 30), SampleRate: 16000, Amplitude: 0.15}
	a := make([]float64, 16000)
	b := make([]float64, 16000)
	SoftSynth{}.Render(a, in)
	SoftSynth{}.Render(b, in)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}
