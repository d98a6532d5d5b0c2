// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ik5/zenify"
	"github.com/ik5/zenify/analysis"
	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/internal/cli"
	"github.com/ik5/zenify/internal/config"
	"github.com/ik5/zenify/internal/logging"
	"github.com/sirupsen/logrus"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Input   string `arg:"" name:"input" help:"Recording to transform (wav, mp3, ogg, aiff)" type:"existingfile" optional:""`
	Output  string `short:"o" type:"path" placeholder:"PATH" help:"Output file (default: <input>.zen.<format>)" env:"ZENIFY_OUTPUT"`
	Format  string `default:"wav" enum:"wav,pcm" help:"Output format" env:"ZENIFY_FORMAT"`

	Seed      uint64 `help:"Seed for the random layers, 0 picks one from the clock" env:"ZENIFY_SEED"`
	Rate      int    `help:"Resample the input to this rate before analysis" env:"ZENIFY_RATE"`
	Downmix   bool   `help:"Average all input channels instead of keeping the first" env:"ZENIFY_DOWNMIX"`
	RainDrops bool   `name:"raindrops" help:"Add the rain drop layer" env:"ZENIFY_RAINDROPS"`
	HardLimit bool   `help:"Clamp the output to [-1, 1]" env:"ZENIFY_HARD_LIMIT"`

	LogLevel string `default:"info" enum:"trace,debug,info,warn,error" help:"Log verbosity on stderr" env:"ZENIFY_LOG_LEVEL"`
	Report   bool   `help:"Print an analysis report after rendering" env:"ZENIFY_REPORT"`
}

// Config maps the flags onto a run configuration. A zero seed is
// replaced with one derived from now.
func (c *CLI) Config(now time.Time) config.Config {
	cfg := config.Default()
	cfg.Input = c.Input
	cfg.Output = c.Output
	cfg.Format = c.Format
	cfg.Rate = c.Rate
	cfg.Downmix = c.Downmix
	cfg.LogLevel = c.LogLevel
	cfg.Report = c.Report

	cfg.Seed = c.Seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(now.UnixNano())
	}
	cfg.RainDrops = c.RainDrops
	cfg.HardLimit = c.HardLimit

	return cfg
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("zenify"),
		kong.Description("Turn a voice recording into a calm stereo piece"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(os.Stdout, version)
		os.Exit(0)
	}

	if cliArgs.Input == "" {
		cli.PrintError(os.Stderr, "No input file specified")
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(sigCtx, cliArgs.Config(time.Now()), os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

// run decodes the input, composes, encodes and writes the output file.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}

	started := time.Now()
	outPath := cfg.OutputPath()

	log.WithFields(logrus.Fields{
		"function": "run",
		"input":    cfg.Input,
		"output":   outPath,
		"seed":     cfg.Seed,
	}).Info("transforming")

	sig, err := load(cfg)
	if err != nil {
		return err
	}

	piece, err := zenify.ComposeSignal(ctx, sig, cfg.Options(log))
	if err != nil {
		return err
	}

	factory, err := zenify.EncoderFor(cfg.Format)
	if err != nil {
		return err
	}

	written, err := writeFile(ctx, outPath, func(w io.Writer) (int64, error) {
		return zenify.Render(ctx, w, piece, factory)
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"function": "run",
		"bytes":    written,
		"elapsed":  time.Since(started).String(),
	}).Debug("output written")

	cli.PrintSummary(stdout, cli.Summary{
		Input:      cfg.Input,
		Output:     outPath,
		Format:     cfg.Format,
		SampleRate: piece.SampleRate,
		Duration:   piece.Duration(),
		Bytes:      written,
		Seed:       cfg.Seed,
	})

	if cfg.Report {
		feat, err := analysis.Extract(ctx, sig)
		if err != nil {
			return fmt.Errorf("extracting features: %w", err)
		}
		r := logging.BuildReport(sig, feat, piece)
		r.InputPath = cfg.Input
		r.OutputPath = outPath
		r.Elapsed = time.Since(started)
		fmt.Fprintln(stdout)
		r.Write(stdout)
	}

	return nil
}

func load(cfg config.Config) (audio.SignalBuffer, error) {
	dec, err := zenify.DefaultRegistry().ForPath(cfg.Input)
	if err != nil {
		return audio.SignalBuffer{}, err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return audio.SignalBuffer{}, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.SignalBuffer{}, fmt.Errorf("decoding %s: %w", cfg.Input, err)
	}
	defer src.Close()

	sig, err := audio.LoadSignal(src, cfg.LoadOptions())
	if err != nil {
		return audio.SignalBuffer{}, fmt.Errorf("loading signal: %w", err)
	}
	return sig, nil
}

// writeFile streams into a temporary file beside path and renames it
// into place once fill succeeds.
func writeFile(ctx context.Context, path string, fill func(io.Writer) (int64, error)) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".zenify-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := fill(tmp)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return n, nil
}
