package asciiart

import (
	"bytes"
	"image"
	"io"
	"log/slog"
	"strings"
)

const (
	// DefaultCharset is the built-in charset, ordered from the lightest to the densest character.
	DefaultCharset = " .:-=+*#%@"

	// DefaultWidth is the number of columns used when neither width, height nor scale is set.
	DefaultWidth = 80

	// DefaultAspect is the usual height/width ratio of a terminal character cell.
	DefaultAspect = 2.0

	bytesPerCharReserve              = 1  // plain ascii output uses a single byte per char
	ansiAdditionalBytesReserved24Bit = 24 // "\x1b[38;2;255;255;255m" + "\x1b[0m" is 23 bytes, reserve 24
)

type AsciiConverter struct {
	// Width is the target amount of columns. A value <= 0 means unset.
	Width int
	// Height is the target amount of rows before aspect correction. A value <= 0 means unset.
	Height int
	// Scale multiplies the derived target size. A value <= 0 means unset.
	Scale float64

	// Charset lists the characters from the lightest to the densest. Falls back to DefaultCharset when empty.
	Charset string
	// Invert swaps the light/dark mapping
	Invert bool

	// UseColor wraps every character in a 24 bit foreground escape sequence carrying the pixel color
	UseColor bool

	// Brightness is added to the luminosity (nominally -1..1). 0 disables it.
	Brightness float64
	// Gamma is applied as lum^(1/Gamma). 1 disables it, as does any value <= 0.
	Gamma float64
	// Contrast stretches the luminosity around 0.5. 1 disables it.
	Contrast float64

	// UseThreshold forces every pixel to either the lightest or the densest char. Gamma and Contrast are ignored while it is set.
	UseThreshold bool
	// Threshold is the minimum luminosity (0-255) for a pixel to count as light. Only used if UseThreshold is true.
	Threshold uint8

	// Aspect is the height/width ratio of a character cell. Values <= 0 fall back to DefaultAspect.
	Aspect float64

	// Filter is the resampling filter used to resize the image to the target grid
	Filter FilterType

	// Logger receives debug diagnostics. nil discards them.
	Logger *slog.Logger

	// BytesPerCharToReserve is the amount of bytes per character to reserve in each line buffer
	BytesPerCharToReserve float64
	// AdditionalBytesPerCharColor is the amount of additional bytes per character to reserve if color is being used
	AdditionalBytesPerCharColor float64
}

type AsciiOption func(*AsciiConverter)

/*
NewDefault initializes an AsciiConverter instance with default parameters.

- Width, Height, Scale: unset (80 columns wide)
- Charset: DefaultCharset
- Invert: false
- UseColor: false
- Brightness: 0
- Gamma: 1
- Contrast: 1
- UseThreshold: false
- Aspect: 2
- Filter: Triangle
- BytesPerCharToReserve: 1
- AdditionalBytesPerCharColor: 24
*/
func NewDefault() *AsciiConverter {
	return &AsciiConverter{
		Charset:                     DefaultCharset,
		Gamma:                       1,
		Contrast:                    1,
		Aspect:                      DefaultAspect,
		Filter:                      Triangle,
		BytesPerCharToReserve:       bytesPerCharReserve,
		AdditionalBytesPerCharColor: ansiAdditionalBytesReserved24Bit,
	}
}

// New initializes an AsciiConverter instance with default parameters, then applies options
func New(opts ...AsciiOption) *AsciiConverter {
	ascii := NewDefault()

	for _, o := range opts {
		o(ascii)
	}

	return ascii
}

func (a *AsciiConverter) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

/*
ConvertLines resizes img to the target grid (see TargetSize) and renders it. The result holds one string per row, top to bottom.
*/
func (a *AsciiConverter) ConvertLines(img image.Image) []string {
	bounds := img.Bounds()
	tw, th := a.TargetSize(bounds.Dx(), bounds.Dy())
	a.logger().Debug("resolved target size",
		"src_width", bounds.Dx(), "src_height", bounds.Dy(),
		"width", tw, "height", th)

	return a.RenderLines(a.Resample(img, tw, th))
}

// Convert is ConvertLines joined by newlines, without a trailing newline.
func (a *AsciiConverter) Convert(img image.Image) string {
	return strings.Join(a.ConvertLines(img), "\n")
}

/*
ConvertReader takes an io.Reader that can read the bytes of an image. See Decode() for the supported formats.

Errors from decoding are returned as *DecodeError.
*/
func (a *AsciiConverter) ConvertReader(r io.Reader) (string, error) {
	img, err := Decode(r)
	if err != nil {
		return "", err
	}

	return a.Convert(img), nil
}

// ConvertBytes takes a byte slice representing an image. See ConvertReader().
func (a *AsciiConverter) ConvertBytes(b []byte) (string, error) {
	return a.ConvertReader(bytes.NewReader(b))
}

/*
ConvertPath reads and converts the image at path. I/O errors are returned unchanged, decoding errors as *DecodeError.
*/
func (a *AsciiConverter) ConvertPath(path string) (string, error) {
	img, err := DecodePath(path)
	if err != nil {
		return "", err
	}

	return a.Convert(img), nil
}
