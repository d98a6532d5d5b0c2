// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/zenify/audio"
)

// mockOggVorbisReader simulates oggvorbis.Reader: Read fills whole frames
// and returns the number of values written.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	n -= n % m.channels
	m.offset += n

	return n, nil
}

func ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}
	return out
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if !errors.Is(err, ErrNotVorbisFile) {
		t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestNewSource_Metadata(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2})
	if err != nil {
		t.Fatal(err)
	}
	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("rate %d channels %d", src.SampleRate(), src.Channels())
	}
	if src.BufSize()%2 != 0 {
		t.Errorf("BufSize() = %d is not whole frames", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNewSource_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := newSource(&mockOggVorbisReader{sampleRate: 44100}); !errors.Is(err, audio.ErrInvalidChannels) {
		t.Errorf("no channels: %v", err)
	}
	if _, err := newSource(&mockOggVorbisReader{channels: 1}); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("no rate: %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		total    int
		dst      int
	}{
		{"mono", 1, 1000, 128},
		{"stereo", 2, 1000, 128},
		{"stereo odd dst", 2, 1000, 127},
		{"surround", 6, 600, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := ramp(tt.total)
			src, err := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, samples: in})
			if err != nil {
				t.Fatal(err)
			}

			var got []float32
			dst := make([]float32, tt.dst)
			for range 1000 {
				n, err := src.ReadSamples(dst)
				if n%tt.channels != 0 {
					t.Fatalf("read %d values, not whole frames", n)
				}
				got = append(got, dst[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
			}

			if len(got) != len(in) {
				t.Fatalf("read %d values, want %d", len(got), len(in))
			}
			for i := range in {
				if got[i] != in[i] {
					t.Fatalf("value %d = %v, want %v", i, got[i], in[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_TooSmall(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: ramp(10)})
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = %d, %v", n, err)
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggVorbisReader{sampleRate: 22050, channels: 2, samples: ramp(20000)})
	out, err := audio.ReadAll(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 20000 {
		t.Errorf("ReadAll() returned %d values", len(out))
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, err: io.ErrUnexpectedEOF})
	if _, err := src.ReadSamples(make([]float32, 16)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	in := ramp(1 << 16)
	dst := make([]float32, 4096)

	for b.Loop() {
		src, _ := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: in})
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
