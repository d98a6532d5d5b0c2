// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ik5/zenify/compose"
	"github.com/ik5/zenify/utils"
)

const (
	// ChunkSize is the number of samples per channel in one EncodeBuffer
	// call, one MPEG-1 Layer III frame.
	ChunkSize = 1152

	Channels    = 2
	BitrateKbps = 128
)

// Params describe the stream a BlockEncoder produces.
type Params struct {
	Channels    int
	SampleRate  int
	BitrateKbps int
}

// NewParams returns stereo 128 kbps parameters at sampleRate.
func NewParams(sampleRate int) Params {
	return Params{Channels: Channels, SampleRate: sampleRate, BitrateKbps: BitrateKbps}
}

func (p Params) Validate() error {
	if p.Channels != Channels {
		return fmt.Errorf("%w: %d channels", ErrInvalidParams, p.Channels)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, p.SampleRate)
	}
	if p.BitrateKbps <= 0 {
		return fmt.Errorf("%w: bitrate %d", ErrInvalidParams, p.BitrateKbps)
	}
	return nil
}

// BlockEncoder turns PCM chunks into an encoded byte stream. Either call
// may return no bytes when the encoder buffers internally.
type BlockEncoder interface {
	EncodeBuffer(left, right []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// Factory builds a BlockEncoder for one stream.
type Factory func(Params) (BlockEncoder, error)

// ToPCM16 converts samples with clamp(round(x * 32767), -32768, 32767).
func ToPCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float64ToInt16(s)
	}
	return out
}

// Encode runs the whole piece through enc and returns the concatenated
// output. s is only read, so a failed attempt can be retried with another
// encoder.
func Encode(ctx context.Context, enc BlockEncoder, s *compose.Stereo) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(ctx, &buf, enc, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write is Encode streaming into w. It returns the number of bytes written.
func Write(ctx context.Context, w io.Writer, enc BlockEncoder, s *compose.Stereo) (int64, error) {
	if enc == nil || s == nil {
		return 0, fmt.Errorf("%w: nil encoder or input", ErrEncodeFailed)
	}
	if len(s.Left) != len(s.Right) {
		return 0, fmt.Errorf("%w: %d left, %d right", ErrChannelMismatch, len(s.Left), len(s.Right))
	}

	left, right := ToPCM16(s.Left), ToPCM16(s.Right)
	var written int64

	emit := func(b []byte) error {
		if len(b) == 0 {
			return nil
		}
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("writing encoded data: %w", err)
		}
		return nil
	}

	for off := 0; off < len(left); off += ChunkSize {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		end := min(off+ChunkSize, len(left))
		out, err := enc.EncodeBuffer(left[off:end], right[off:end])
		if err != nil {
			return written, fmt.Errorf("%w: chunk at sample %d: %w", ErrEncodeFailed, off, err)
		}
		if err := emit(out); err != nil {
			return written, err
		}
	}

	tail, err := enc.Flush()
	if err != nil {
		return written, fmt.Errorf("%w: flush: %w", ErrEncodeFailed, err)
	}
	if err := emit(tail); err != nil {
		return written, err
	}

	return written, nil
}
