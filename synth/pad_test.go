// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"testing"

	"github.com/ik5/zenify/analysis"
)

func TestAmbientPad_ChordQuarters(t *testing.T) {
	t.Parallel()

	const sr = 44100
	buf := make([]float64, 4*sr)
	AmbientPad{}.Render(buf, Input{
		Envelope:   constTrack(1, analysis.FrameCount(len(buf))),
		SampleRate: sr,
		Amplitude:  0.2,
	})

	roots := []float64{220, 196, 261.63, 220}
	for q, root := range roots {
		sp := analysis.NewSpectrum(buf[q*sr:(q+1)*sr], sr)
		own := sp.MagnitudeAt(root)
		for _, other := range roots {
			if other == root {
				continue
			}
			if foreign := sp.MagnitudeAt(other); own < 10*foreign {
				t.Errorf("quarter %d: |%.2f Hz| = %v not dominant over |%.2f Hz| = %v", q, root, own, other, foreign)
			}
		}
	}
}

func TestAmbientPad_Deterministic(t *testing.T) {
	t.Parallel()

	in := Input{Envelope: constTrack(0.7, 40), SampleRate: 22050, Amplitude: 0.2, Offset: 0.05}

	a := make([]float64, 22050)
	b := make([]float64, 22050)
	AmbientPad{}.Render(a, in)
	AmbientPad{}.Render(b, in)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	in.Offset = 0
	c := make([]float64, 22050)
	AmbientPad{}.Render(c, in)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("channel offset did not change the LFO phase")
	}
}

func TestAmbientPad_Additive(t *testing.T) {
	t.Parallel()

	in := Input{Envelope: constTrack(1, 10), SampleRate: 8000, Amplitude: 0.2}

	clean := make([]float64, 8000)
	AmbientPad{}.Render(clean, in)

	biased := make([]float64, 8000)
	for i := range biased {
		biased[i] = 0.25
	}
	AmbientPad{}.Render(biased, in)

	for i := range clean {
		if d := biased[i] - clean[i] - 0.25; d > 1e-12 || d < -1e-12 {
			t.Fatalf("sample %d: layer did not add into existing content", i)
		}
	}
}
