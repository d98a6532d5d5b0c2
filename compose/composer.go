// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/ik5/zenify/analysis"
	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/synth"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// seedStream separates the PCG streams of the two channels.
const seedStream = 0x9e3779b97f4a7c15

// RandFactory returns the random source for one output channel. It is
// called once per channel and per Compose call, possibly concurrently.
type RandFactory func(channel int) synth.Rand

type Option func(*Composer)

// WithLogger sets where per-layer debug entries go.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRandFactory replaces the seeded PCG sources.
func WithRandFactory(f RandFactory) Option {
	return func(c *Composer) {
		if f != nil {
			c.rand = f
		}
	}
}

// Composer renders stereo pieces. It is safe for concurrent use.
type Composer struct {
	cfg  Config
	log  logrus.FieldLogger
	rand RandFactory
}

// New validates cfg and returns a Composer.
func New(cfg Config, opts ...Option) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Composer{cfg: cfg, log: discard}
	c.rand = c.seeded
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Composer) Config() Config { return c.cfg }

func (c *Composer) seeded(channel int) synth.Rand {
	return rand.New(rand.NewPCG(c.cfg.Seed, seedStream^uint64(channel)))
}

type stage struct {
	layer     synth.Layer
	amplitude float64
}

func (c *Composer) stages(rng synth.Rand) []stage {
	st := []stage{
		{synth.AmbientPad{}, c.cfg.PadAmplitude},
		{synth.SoftSynth{}, c.cfg.SynthAmplitude},
		{synth.NewGentlePiano(rng), c.cfg.PianoAmplitude},
		{synth.ReverbTail{}, c.cfg.ReverbAmplitude},
		{synth.SubBass{}, c.cfg.BassAmplitude},
		{synth.NewShimmer(rng), c.cfg.ShimmerAmplitude},
	}
	if c.cfg.RainDrops {
		st = append(st, stage{synth.NewRainDrops(rng), c.cfg.RainAmplitude})
	}
	return st
}

// Compose renders sig into a stereo piece of the same length and rate.
// Cancellation is checked between layers.
func (c *Composer) Compose(ctx context.Context, sig audio.SignalBuffer) (*Stereo, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	feat, err := analysis.Extract(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("extracting features: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"function":    "Composer.Compose",
		"samples":     sig.Len(),
		"sample_rate": sig.SampleRate(),
		"windows":     feat.Envelope.Len(),
	}).Debug("features extracted")

	n := sig.OutputLength()
	var channels [2][]float64

	g, gctx := errgroup.WithContext(ctx)
	for ch := range channels {
		g.Go(func() error {
			buf, err := c.renderChannel(gctx, ch, n, sig.SampleRate(), feat)
			if err != nil {
				return err
			}
			channels[ch] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("composing: %w", err)
	}

	return &Stereo{Left: channels[0], Right: channels[1], SampleRate: sig.SampleRate()}, nil
}

func (c *Composer) renderChannel(ctx context.Context, channel, n, sampleRate int, feat analysis.Features) ([]float64, error) {
	buf := make([]float64, n)
	in := synth.Input{
		Envelope:   feat.Envelope,
		Pitch:      feat.Pitch,
		SampleRate: sampleRate,
		Offset:     float64(channel) * c.cfg.StereoOffset,
	}

	for _, st := range c.stages(c.rand(channel)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in.Amplitude = st.amplitude
		st.layer.Render(buf, in)

		c.log.WithFields(logrus.Fields{
			"function":  "Composer.renderChannel",
			"channel":   channel,
			"layer":     st.layer.Name(),
			"amplitude": st.amplitude,
		}).Debug("layer rendered")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shape(buf, feat.Envelope, c.cfg.Ceiling, c.cfg.HardLimit)

	return buf, nil
}

// shape scales buf by sqrt(envelope) * ceiling. Sample i reads envelope
// window floor(i / (len(buf) / len(envelope))), clamped to the last one.
// Without envelope data the buffer is silenced.
func shape(buf []float64, env analysis.Track, ceiling float64, limit bool) {
	m := env.Len()
	if m == 0 {
		clear(buf)
		return
	}

	step := float64(len(buf)) / float64(m)
	for i := range buf {
		idx := min(int(float64(i)/step), m-1)
		buf[i] *= math.Sqrt(env.Values[idx]) * ceiling
		if limit {
			buf[i] = math.Max(-1, math.Min(1, buf[i]))
		}
	}
}
