// SPDX-License-Identifier: EPL-2.0

// Package encode hands a rendered stereo piece to a block encoder.
//
// The float channels are converted to 16-bit PCM and submitted in chunks
// of ChunkSize samples per channel, the last chunk possibly shorter. The
// bytes returned by every call, and finally by Flush, are concatenated in
// call order. Any encoder can plug in through BlockEncoder; RawPCM emits
// interleaved little-endian samples and formats/wav writes a RIFF file.
package encode
