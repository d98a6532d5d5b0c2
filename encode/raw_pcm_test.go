// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ik5/zenify/compose"
)

func TestRawPCM_Interleaves(t *testing.T) {
	t.Parallel()

	enc, err := NewRawPCM(NewParams(8000))
	if err != nil {
		t.Fatal(err)
	}

	out, err := enc.EncodeBuffer([]int16{1, -2}, []int16{0x0102, -1})
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0x00, 0x02, 0x01, 0xfe, 0xff, 0xff, 0xff}
	if !bytes.Equal(out, want) {
		t.Errorf("EncodeBuffer() = % x, want % x", out, want)
	}
}

func TestRawPCM_Mismatch(t *testing.T) {
	t.Parallel()

	enc, _ := NewRawPCM(NewParams(8000))
	if _, err := enc.EncodeBuffer([]int16{1}, nil); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("EncodeBuffer() error = %v", err)
	}
}

func TestRawPCM_InvalidParams(t *testing.T) {
	t.Parallel()

	if _, err := NewRawPCM(Params{Channels: 1, SampleRate: 8000, BitrateKbps: 128}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("NewRawPCM() error = %v", err)
	}
}

func TestRawPCM_WholePiece(t *testing.T) {
	t.Parallel()

	s := &compose.Stereo{Left: make([]float64, 3000), Right: make([]float64, 3000), SampleRate: 22050}
	s.Left[2999] = 1

	enc, _ := NewRawPCM(NewParams(s.SampleRate))
	out, err := Encode(context.Background(), enc, s)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 3000*4 {
		t.Fatalf("len = %d, want %d", len(out), 3000*4)
	}
	if out[len(out)-4] != 0xff || out[len(out)-3] != 0x7f {
		t.Errorf("last left sample = % x, want ff 7f", out[len(out)-4:len(out)-2])
	}
}
