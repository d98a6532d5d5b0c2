// SPDX-License-Identifier: EPL-2.0

// Package audio provides the input side of the engine: decoded sources,
// whole-buffer channel reduction and resampling, and SignalBuffer, the
// immutable mono view the analysis and composition stages read.
//
// # Source Interface
//
// Every decoder under formats/ returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Loading a Signal
//
// The engine works on fully resident recordings. LoadSignal drains a
// Source, keeps the first channel (or averages them with Average) and
// optionally resamples:
//
//	sig, err := audio.LoadSignal(src, audio.LoadOptions{Mode: audio.FirstChannel})
//
// # Building a Signal Directly
//
//	sig, err := audio.NewSignalBuffer(samples, 44100, len(samples))
//
// NewSignalBuffer fails with ErrInvalidInput on a non-positive sample rate,
// a declared length that does not match the slice, or non-finite samples.
//
// # Format Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("take1.wav")
package audio
