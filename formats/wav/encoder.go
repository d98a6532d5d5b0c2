// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/zenify/encode"
	"github.com/ik5/zenify/internal/memio"
)

const bitDepth = 16

// BlockEncoder writes 16-bit stereo RIFF/WAVE. The RIFF sizes are only
// known at the end, so EncodeBuffer returns nothing and Flush returns the
// whole file.
type BlockEncoder struct {
	out     *memio.WriteSeeker
	enc     *wav.Encoder
	buf     *goaudio.IntBuffer
	written bool
}

var _ encode.BlockEncoder = (*BlockEncoder)(nil)

// NewBlockEncoder is an encode.Factory.
func NewBlockEncoder(p encode.Params) (encode.BlockEncoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := &memio.WriteSeeker{}

	return &BlockEncoder{
		out: out,
		enc: wav.NewEncoder(out, p.SampleRate, bitDepth, p.Channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (e *BlockEncoder) EncodeBuffer(left, right []int16) ([]byte, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d left, %d right", encode.ErrChannelMismatch, len(left), len(right))
	}

	size := 2 * len(left)
	if cap(e.buf.Data) < size {
		e.buf.Data = make([]int, size)
	}
	e.buf.Data = e.buf.Data[:size]

	for i := range left {
		e.buf.Data[2*i] = int(left[i])
		e.buf.Data[2*i+1] = int(right[i])
	}

	if err := e.enc.Write(e.buf); err != nil {
		return nil, fmt.Errorf("writing wav frames: %w", err)
	}
	e.written = true

	return nil, nil
}

func (e *BlockEncoder) Flush() ([]byte, error) {
	if !e.written {
		// Nothing was encoded yet: an empty write still lays down the headers.
		e.buf.Data = e.buf.Data[:0]
		if err := e.enc.Write(e.buf); err != nil {
			return nil, fmt.Errorf("writing wav header: %w", err)
		}
		e.written = true
	}

	if err := e.enc.Close(); err != nil {
		return nil, fmt.Errorf("finalising wav: %w", err)
	}

	out := make([]byte, len(e.out.Bytes()))
	copy(out, e.out.Bytes())
	e.out.Reset()

	return out, nil
}
