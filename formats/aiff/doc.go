// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio through github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported, with any channel count
// and sample rate. The go-audio decoder seeks between chunks, so readers
// that cannot seek are read fully into memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// Samples come out as float32 in [-1, 1).
package aiff
