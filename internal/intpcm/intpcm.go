// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio integer decoders (WAV, AIFF) to
// audio.Source.
package intpcm

import (
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/utils"
)

const defaultBufSize = 4096

// Reader is the part of wav.Decoder and aiff.Decoder a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and scales it into [-1, 1).
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
	done       bool
}

var _ audio.Source = (*Source)(nil)

// NewSource wraps dec. bitDepth selects the scale; the rate and channel
// count come from dec.Format().
func NewSource(dec Reader, bitDepth int) (*Source, error) {
	format := dec.Format()
	if format == nil {
		return nil, audio.ErrInvalidInput
	}
	if format.NumChannels <= 0 {
		return nil, audio.ErrInvalidChannels
	}
	if format.SampleRate <= 0 {
		return nil, audio.ErrInvalidRate
	}

	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      utils.IntScale(bitDepth),
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return defaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	case err != nil:
		return n, err
	case n < len(dst):
		// The go-audio decoders report the end of data as a short read.
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
	}

	return n, nil
}
