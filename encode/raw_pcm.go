// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"encoding/binary"
	"fmt"
)

// RawPCM interleaves each chunk as signed 16-bit little-endian samples,
// left first. It keeps no state, so Flush returns nothing.
type RawPCM struct{}

// NewRawPCM is a Factory.
func NewRawPCM(p Params) (BlockEncoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &RawPCM{}, nil
}

func (*RawPCM) EncodeBuffer(left, right []int16) ([]byte, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d left, %d right", ErrChannelMismatch, len(left), len(right))
	}

	out := make([]byte, len(left)*2*Channels)
	for i := range left {
		binary.LittleEndian.PutUint16(out[4*i:], uint16(left[i]))
		binary.LittleEndian.PutUint16(out[4*i+2:], uint16(right[i]))
	}

	return out, nil
}

func (*RawPCM) Flush() ([]byte, error) { return nil, nil }
