// SPDX-License-Identifier: EPL-2.0

// Package compose turns a mono recording into an ambient stereo piece.
//
// A Composer extracts the envelope and pitch tracks of the input, renders
// a fixed chain of synthesis layers into one buffer per output channel and
// shapes both channels with the recording's envelope:
//
//	AmbientPad -> SoftSynth -> GentlePiano -> ReverbTail -> SubBass -> Shimmer
//
// ReverbTail feeds back on what the layers before it wrote, so the order is
// part of the result. RainDrops can be appended with Config.RainDrops.
//
// Both channels are rendered concurrently, each with its own buffer and its
// own seeded random source, so a given Config.Seed always produces the same
// output.
package compose
