// SPDX-License-Identifier: EPL-2.0

package audio

// ChannelMode selects how interleaved multi-channel audio becomes mono.
type ChannelMode int

const (
	// FirstChannel keeps channel 0 and ignores the rest.
	FirstChannel ChannelMode = iota
	// Average mixes all channels with equal weight.
	Average
)

func (m ChannelMode) String() string {
	switch m {
	case FirstChannel:
		return "first"
	case Average:
		return "average"
	default:
		return "unknown"
	}
}

// Downmix reduces interleaved samples with the given channel count to a
// new mono slice. Mono input is copied unchanged.
func Downmix(interleaved []float32, channels int, mode ChannelMode) ([]float32, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(interleaved)%channels != 0 {
		return nil, ErrPartialFrame
	}

	frames := len(interleaved) / channels
	dst := make([]float32, frames)

	if channels == 1 {
		copy(dst, interleaved)
		return dst, nil
	}

	if mode == FirstChannel {
		for f := range frames {
			dst[f] = interleaved[f*channels]
		}
		return dst, nil
	}

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += interleaved[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return dst, nil
}
