// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
const maxEmptyReads = 64

// LoadOptions controls how a decoded Source becomes a SignalBuffer.
type LoadOptions struct {
	// Mode picks the channel reduction; the zero value keeps the first channel.
	Mode ChannelMode
	// TargetRate resamples the mono signal when positive and different
	// from the source rate.
	TargetRate int
}

// ReadAll drains src and returns every interleaved sample it produced.
func ReadAll(src Source) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	buf := make([]float32, size)
	out := make([]float32, 0, size*4)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	// Drop a dangling partial frame from a truncated stream.
	out = out[:len(out)-len(out)%channels]

	return out, nil
}

// LoadSignal reads src to the end and reduces it to a mono SignalBuffer.
func LoadSignal(src Source, opts LoadOptions) (SignalBuffer, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return SignalBuffer{}, fmt.Errorf("%w: sample rate %d", ErrInvalidInput, rate)
	}

	interleaved, err := ReadAll(src)
	if err != nil {
		return SignalBuffer{}, err
	}

	mono, err := Downmix(interleaved, src.Channels(), opts.Mode)
	if err != nil {
		return SignalBuffer{}, err
	}

	if opts.TargetRate > 0 && opts.TargetRate != rate {
		mono, err = Resample(mono, rate, opts.TargetRate)
		if err != nil {
			return SignalBuffer{}, err
		}
		rate = opts.TargetRate
	}

	return NewSignalBuffer(mono, rate, len(mono))
}
