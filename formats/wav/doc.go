// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 16, 24 or 32 bits, any channel count and
// any sample rate. Readers that cannot seek are buffered in memory, since
// the go-audio decoder walks the RIFF chunks with Seek:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Samples come out as float32 in [-1, 1).
//
// # Encoding
//
// BlockEncoder implements encode.BlockEncoder for 16-bit stereo files.
// The RIFF and data chunk sizes are patched once the stream ends, so all
// bytes are released by Flush:
//
//	enc, _ := wav.NewBlockEncoder(encode.NewParams(44100))
//	data, err := encode.Encode(ctx, enc, piece)
package wav
