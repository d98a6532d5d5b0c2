// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo at the stream's sample
// rate, so the returned audio.Source reports two channels even for mono
// files. Samples come out as float32 in [-1, 1):
//
//	src, err := mp3.Decoder{}.Decode(file)
//	sig, err := audio.LoadSignal(src, audio.LoadOptions{})
//
// There is no encoder here; encode.BlockEncoder is the place an MP3
// encoder plugs in.
package mp3
