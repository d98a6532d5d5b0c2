// SPDX-License-Identifier: EPL-2.0

// Package zenify turns a voice recording into an ambient stereo piece.
//
// The recording only lends its shape: an amplitude envelope and a coarse
// zero-crossing pitch track drive a fixed chain of synthesis layers (pad
// chords, a pentatonic synth, bell-like piano notes, a feedback reverb,
// sub bass and high sparkles), and the envelope finally shapes the result
// so it breathes with the original.
//
// # Quick Start
//
//	f, _ := os.Open("voice.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	piece, err := zenify.Transform(ctx, src, zenify.DefaultOptions())
//	if err != nil {
//	    // invalid input or canceled
//	}
//
//	out, _ := os.Create("zen.wav")
//	factory, _ := zenify.EncoderFor("wav")
//	_, err = zenify.Render(ctx, out, piece, factory)
//
// # Packages
//
//   - audio: Source/Decoder/Registry, SignalBuffer, downmix and resampling
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - analysis: envelope and pitch tracks, FFT spectrum
//   - synth: the synthesis layers
//   - compose: layer order, stereo rendering and final shaping
//   - encode: 16-bit conversion and the block encoder boundary
//
// Rendering is deterministic for a given compose.Config.Seed.
package zenify
