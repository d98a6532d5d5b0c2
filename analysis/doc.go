// SPDX-License-Identifier: EPL-2.0

// Package analysis turns a recorded signal into the coarse control tracks
// that drive synthesis: a mean-absolute amplitude envelope and a
// zero-crossing pitch estimate, both on a 2048-sample window hopped every
// 512 samples.
//
// A Track can be empty when the recording is shorter than one window.
// Track.Sample returns 0 for an empty Track, so consumers never have to
// special-case it.
//
// Spectrum wraps a Hann-windowed FFT for diagnostics such as the per-quarter
// dominant frequency report of the zenify command.
package analysis
