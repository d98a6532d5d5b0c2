// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/zenify/analysis"
	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/compose"
)

// sections is how many equal slices of the output get a dominant frequency.
const sections = 4

// Report summarises one run: what was heard and what was made of it.
type Report struct {
	InputPath  string
	OutputPath string
	Elapsed    time.Duration

	SampleRate int
	InputLen   int
	Windows    int

	EnvelopePeak float64
	PitchMean    float64

	OutputPeak float64
	// Dominant holds the strongest 100 Hz - 1 kHz component of each
	// quarter of the left channel.
	Dominant []float64
}

// BuildReport measures sig, its features and the rendered piece.
func BuildReport(sig audio.SignalBuffer, feat analysis.Features, piece *compose.Stereo) Report {
	r := Report{
		SampleRate:   sig.SampleRate(),
		InputLen:     sig.Len(),
		Windows:      feat.Envelope.Len(),
		EnvelopePeak: feat.Envelope.Max(),
		OutputPeak:   piece.Peak(),
	}

	if n := feat.Pitch.Len(); n > 0 {
		sum := 0.0
		for _, v := range feat.Pitch.Values {
			sum += v
		}
		r.PitchMean = sum / float64(n)
	}

	size := len(piece.Left) / sections
	if size >= 2 {
		for q := range sections {
			sp := analysis.NewSpectrum(piece.Left[q*size:(q+1)*size], piece.SampleRate)
			r.Dominant = append(r.Dominant, sp.Dominant(100, 1000))
		}
	}

	return r
}

// Write renders the report as plain text.
func (r Report) Write(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "ZENIFY: %s\n", filepath.Base(r.InputPath))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	duration := 0.0
	if r.SampleRate > 0 {
		duration = float64(r.InputLen) / float64(r.SampleRate)
	}

	fmt.Fprintf(w, "Duration:    %.2f s\n", duration)
	fmt.Fprintf(w, "Sample Rate: %d Hz\n", r.SampleRate)
	fmt.Fprintf(w, "Output:      %s\n", r.OutputPath)
	fmt.Fprintf(w, "Elapsed:     %s\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	writeSection(w, "ANALYSIS")
	fmt.Fprintf(w, "  Windows:        %d\n", r.Windows)
	fmt.Fprintf(w, "  Envelope peak:  %.4f\n", r.EnvelopePeak)
	fmt.Fprintf(w, "  Mean pitch:     %.1f Hz\n", r.PitchMean)
	fmt.Fprintln(w)

	writeSection(w, "OUTPUT")
	fmt.Fprintf(w, "  Peak:           %.4f\n", r.OutputPeak)
	for i, f := range r.Dominant {
		fmt.Fprintf(w, "  Quarter %d:      %.1f Hz\n", i+1, f)
	}
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}
