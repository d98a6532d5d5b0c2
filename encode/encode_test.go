// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ik5/zenify/compose"
)

// recorder is a BlockEncoder that remembers every chunk it was given.
type recorder struct {
	chunks  [][2][]int16
	flushed int
	failAt  int
	err     error
}

func (r *recorder) EncodeBuffer(left, right []int16) ([]byte, error) {
	if r.err != nil && len(r.chunks) == r.failAt {
		return nil, r.err
	}
	r.chunks = append(r.chunks, [2][]int16{append([]int16(nil), left...), append([]int16(nil), right...)})
	return []byte{byte(len(r.chunks))}, nil
}

func (r *recorder) Flush() ([]byte, error) {
	r.flushed++
	return []byte("end"), nil
}

type failingFlush struct{ recorder }

func (*failingFlush) Flush() ([]byte, error) { return nil, errors.New("disk full") }

func ramp(n int) *compose.Stereo {
	s := &compose.Stereo{Left: make([]float64, n), Right: make([]float64, n), SampleRate: 44100}
	for i := range n {
		s.Left[i] = float64(i%100) / 100
		s.Right[i] = -s.Left[i]
	}
	return s
}

func TestToPCM16(t *testing.T) {
	t.Parallel()

	in := []float64{0, 1, -1, 0.5, -0.5, 1.5, -1.5, 0.00001, math.NaN(), 2 / 32767.0}
	want := []int16{0, 32767, -32767, 16384, -16384, 32767, -32768, 0, 0, 2}

	got := ToPCM16(in)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToPCM16(%v) = %d, want %d", in[i], got[i], want[i])
		}
	}
}

func TestEncode_Chunking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		sizes []int
	}{
		{"empty", 0, nil},
		{"short", 10, []int{10}},
		{"exact", 2 * ChunkSize, []int{ChunkSize, ChunkSize}},
		{"partial tail", 2*ChunkSize + 7, []int{ChunkSize, ChunkSize, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			s := ramp(tt.n)
			out, err := Encode(context.Background(), rec, s)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			if len(rec.chunks) != len(tt.sizes) {
				t.Fatalf("%d chunks, want %d", len(rec.chunks), len(tt.sizes))
			}

			pos := 0
			for i, c := range rec.chunks {
				if len(c[0]) != tt.sizes[i] || len(c[1]) != tt.sizes[i] {
					t.Errorf("chunk %d sizes %d/%d, want %d", i, len(c[0]), len(c[1]), tt.sizes[i])
				}
				for j := range c[0] {
					if c[0][j] != ToPCM16(s.Left[pos+j : pos+j+1])[0] {
						t.Fatalf("chunk %d sample %d out of order", i, j)
					}
				}
				pos += len(c[0])
			}

			if rec.flushed != 1 {
				t.Errorf("Flush called %d times", rec.flushed)
			}

			var want []byte
			for i := range rec.chunks {
				want = append(want, byte(i+1))
			}
			want = append(want, "end"...)
			if !bytes.Equal(out, want) {
				t.Errorf("Encode() = %q, want %q", out, want)
			}
		})
	}
}

func TestEncode_FailureWrapped(t *testing.T) {
	t.Parallel()

	backend := errors.New("backend exploded")
	rec := &recorder{failAt: 1, err: backend}
	s := ramp(3 * ChunkSize)
	before := append([]float64(nil), s.Left...)

	_, err := Encode(context.Background(), rec, s)
	if !errors.Is(err, ErrEncodeFailed) || !errors.Is(err, backend) {
		t.Fatalf("Encode() error = %v, want ErrEncodeFailed wrapping the backend error", err)
	}
	if rec.flushed != 0 {
		t.Error("Flush called after a failed chunk")
	}

	for i := range before {
		if s.Left[i] != before[i] {
			t.Fatal("input modified by a failed encode")
		}
	}

	// The same input encodes fine with a working encoder.
	if _, err := Encode(context.Background(), &recorder{}, s); err != nil {
		t.Errorf("re-encode error = %v", err)
	}
}

func TestEncode_FlushFailure(t *testing.T) {
	t.Parallel()

	_, err := Encode(context.Background(), &failingFlush{}, ramp(5))
	if !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("Encode() error = %v, want ErrEncodeFailed", err)
	}
}

func TestEncode_ChannelMismatch(t *testing.T) {
	t.Parallel()

	s := &compose.Stereo{Left: make([]float64, 3), Right: make([]float64, 2), SampleRate: 8000}
	if _, err := Encode(context.Background(), &recorder{}, s); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("Encode() error = %v, want ErrChannelMismatch", err)
	}
}

func TestEncode_NilArguments(t *testing.T) {
	t.Parallel()

	if _, err := Encode(context.Background(), nil, ramp(1)); !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("nil encoder: %v", err)
	}
	if _, err := Encode(context.Background(), &recorder{}, nil); !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("nil input: %v", err)
	}
}

func TestEncode_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	if _, err := Encode(ctx, rec, ramp(10)); !errors.Is(err, context.Canceled) {
		t.Errorf("Encode() error = %v, want context.Canceled", err)
	}
	if len(rec.chunks) != 0 {
		t.Error("chunks encoded after cancellation")
	}
}

type shortWriter struct{}

func (shortWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWrite_WriterError(t *testing.T) {
	t.Parallel()

	_, err := Write(context.Background(), shortWriter{}, &recorder{}, ramp(4))
	if err == nil || errors.Is(err, ErrEncodeFailed) {
		t.Errorf("Write() error = %v, want a plain write error", err)
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	p := NewParams(44100)
	if p.Channels != 2 || p.BitrateKbps != 128 || p.SampleRate != 44100 {
		t.Errorf("NewParams() = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	for _, bad := range []Params{{1, 44100, 128}, {2, 0, 128}, {2, 44100, 0}} {
		if err := bad.Validate(); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%+v: Validate() = %v", bad, err)
		}
	}
}
