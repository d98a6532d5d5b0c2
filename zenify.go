// SPDX-License-Identifier: EPL-2.0

package zenify

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/compose"
	"github.com/ik5/zenify/encode"
	"github.com/ik5/zenify/formats/aiff"
	"github.com/ik5/zenify/formats/mp3"
	"github.com/ik5/zenify/formats/vorbis"
	"github.com/ik5/zenify/formats/wav"
	"github.com/sirupsen/logrus"
)

// Options configure Transform.
type Options struct {
	Compose compose.Config
	Load    audio.LoadOptions
	// Logger receives debug entries from the composer. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions keep the first channel at its own rate and use the
// standard mix.
func DefaultOptions() Options {
	return Options{Compose: compose.DefaultConfig()}
}

// DefaultRegistry knows every input format in formats/, keyed by file
// extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

var encoders = map[string]encode.Factory{
	"wav": wav.NewBlockEncoder,
	"pcm": encode.NewRawPCM,
}

// OutputFormats lists the names EncoderFor accepts.
func OutputFormats() []string {
	out := make([]string, 0, len(encoders))
	for k := range encoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// EncoderFor returns the factory for an output format name.
func EncoderFor(format string) (encode.Factory, error) {
	f, ok := encoders[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
	return f, nil
}

// Transform drains src into a mono signal and composes a stereo piece
// from it.
func Transform(ctx context.Context, src audio.Source, opts Options) (*compose.Stereo, error) {
	sig, err := audio.LoadSignal(src, opts.Load)
	if err != nil {
		return nil, fmt.Errorf("loading signal: %w", err)
	}
	return ComposeSignal(ctx, sig, opts)
}

// ComposeSignal runs the composer configured by opts over an already
// loaded signal. opts.Load is ignored.
func ComposeSignal(ctx context.Context, sig audio.SignalBuffer, opts Options) (*compose.Stereo, error) {
	var copts []compose.Option
	if opts.Logger != nil {
		copts = append(copts, compose.WithLogger(opts.Logger))
	}

	c, err := compose.New(opts.Compose, copts...)
	if err != nil {
		return nil, err
	}

	return c.Compose(ctx, sig)
}

// Render encodes piece with a fresh encoder from factory and writes the
// result to w.
func Render(ctx context.Context, w io.Writer, piece *compose.Stereo, factory encode.Factory) (int64, error) {
	enc, err := factory(encode.NewParams(piece.SampleRate))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", encode.ErrEncodeFailed, err)
	}
	return encode.Write(ctx, w, enc, piece)
}
