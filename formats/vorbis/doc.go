// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// The decoder already yields interleaved float32 in [-1, 1], so samples
// are read straight into the caller's buffer, trimmed to whole frames.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // not an Ogg Vorbis stream
//	}
package vorbis
