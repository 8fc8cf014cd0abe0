// Package cmd implements the commands of the jpg2ascii CLI.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nebbyJammin/jpg2ascii/internal/player"
	"github.com/nebbyJammin/jpg2ascii/internal/terminal"
	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

// StdinPath is the input name that makes Convert read the image from stdin.
const StdinPath = "-"

// Streams is what Convert reads from and writes to, besides files named on the command line.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	// Env is the colour capability of Stdout.
	Env terminal.Env
}

type Convert struct {
	Input  string `arg:"" help:"Image to convert, or - to read it from stdin"`
	Output string `short:"o" help:"Write the result to this file instead of stdout (ignored with --animate)" env:"JPG2ASCII_OUTPUT"`

	Width  int     `short:"W" help:"Target width in characters" env:"JPG2ASCII_WIDTH"`
	Height int     `short:"H" help:"Target height in characters, before aspect correction" env:"JPG2ASCII_HEIGHT"`
	Scale  float64 `short:"s" help:"Multiplier for the derived size" env:"JPG2ASCII_SCALE"`
	Aspect float64 `help:"Height/width ratio of a character cell" default:"2" env:"JPG2ASCII_ASPECT"`
	Filter string  `help:"Resampling filter: ${filters}" enum:"${filters}" default:"triangle" env:"JPG2ASCII_FILTER"`

	Charset string `help:"Characters ordered from light to dense" default:"${default_charset}" env:"JPG2ASCII_CHARSET"`
	Invert  bool   `help:"Swap the light/dense mapping" env:"JPG2ASCII_INVERT"`

	Color   bool `help:"Colour every character with 24 bit ANSI escapes (only if the terminal supports it)" env:"JPG2ASCII_COLOR"`
	NoColor bool `help:"Never emit colour, overrides --color" env:"JPG2ASCII_NO_COLOR"`

	Gamma      float64 `help:"Gamma, applied as l^(1/gamma)" default:"1" env:"JPG2ASCII_GAMMA"`
	Contrast   float64 `help:"Contrast around mid gray" default:"1" env:"JPG2ASCII_CONTRAST"`
	Brightness float64 `help:"Brightness offset, -1 to 1" default:"0" env:"JPG2ASCII_BRIGHTNESS"`
	Threshold  int     `help:"Binary threshold 0-255, negative disables it" default:"-1" env:"JPG2ASCII_THRESHOLD"`

	Animate bool    `help:"Play all frames of a GIF (or stdin) in the terminal" env:"JPG2ASCII_ANIMATE"`
	FPS     float64 `name:"fps" help:"Frames per second while animating, <= 0 means 10" default:"12" env:"JPG2ASCII_FPS"`
}

// Run is called by Kong when the convert command is executed.
func (c *Convert) Run(logger *slog.Logger, streams *Streams) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.Execute(ctx, logger, streams)
}

// Options translates the flags into converter options. useColor is the final colour decision.
func (c *Convert) Options(logger *slog.Logger, useColor bool) ([]asciiart.AsciiOption, error) {
	filter, err := asciiart.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}

	opts := []asciiart.AsciiOption{
		asciiart.WithWidth(c.Width),
		asciiart.WithHeight(c.Height),
		asciiart.WithScale(c.Scale),
		asciiart.WithAspect(c.Aspect),
		asciiart.WithFilter(filter),
		asciiart.WithCharset(c.Charset),
		asciiart.WithInvert(c.Invert),
		asciiart.WithColor(useColor),
		asciiart.WithGamma(c.Gamma),
		asciiart.WithContrast(c.Contrast),
		asciiart.WithBrightness(c.Brightness),
		asciiart.WithLogger(logger),
	}

	if c.Threshold >= 0 {
		opts = append(opts, asciiart.WithThreshold(uint8(min(c.Threshold, 255))))
	}

	return opts, nil
}

// UseColor reports whether colour output was asked for and can be shown.
func (c *Convert) UseColor(env terminal.Env) bool {
	return c.Color && !c.NoColor && terminal.SupportsANSI(env)
}

// Execute converts the input and either writes it out or plays it, see Convert.
func (c *Convert) Execute(ctx context.Context, logger *slog.Logger, streams *Streams) error {
	useColor := c.UseColor(streams.Env)
	if c.Color && !useColor {
		logger.Debug("colour disabled", "no_color_flag", c.NoColor, "env", streams.Env)
	}

	opts, err := c.Options(logger, useColor)
	if err != nil {
		return err
	}
	conv := asciiart.New(opts...)

	if c.Animate {
		if c.Output != "" {
			logger.Warn("--output is ignored while animating", "output", c.Output)
		}

		frames, err := c.frames(conv, streams.Stdin)
		if err != nil {
			return err
		}

		logger.Info("playing", "input", c.Input, "frames", len(frames), "fps", c.FPS)
		return player.Play(ctx, streams.Stdout, frames, c.FPS)
	}

	art, err := c.single(conv, streams.Stdin)
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(art), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("wrote output", "path", c.Output, "bytes", len(art))
		return nil
	}

	if _, err := io.WriteString(streams.Stdout, art); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func (c *Convert) single(conv *asciiart.AsciiConverter, stdin io.Reader) (string, error) {
	if c.Input != StdinPath {
		return conv.ConvertPath(c.Input)
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return conv.ConvertBytes(b)
}

func (c *Convert) frames(conv *asciiart.AsciiConverter, stdin io.Reader) ([]string, error) {
	if c.Input == StdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return conv.ConvertAnimatedBytes(b)
	}

	if strings.EqualFold(filepath.Ext(c.Input), ".gif") {
		return conv.ConvertAnimatedPath(c.Input)
	}

	frame, err := conv.ConvertPath(c.Input)
	if err != nil {
		return nil, err
	}

	return []string{frame}, nil
}
