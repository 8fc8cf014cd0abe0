package asciiart

import (
	"image"
	"image/color"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

/*
RenderLines renders every pixel of img as one character and returns one line per pixel row, top to bottom. img should already be resized to the target grid (see Resample).

Rows do not depend on each other, so they are rendered concurrently (at most GOMAXPROCS at a time). Each row writes its own slot of the result, the order of the output never depends on scheduling.
*/
func (a *AsciiConverter) RenderLines(img *image.NRGBA) []string {
	bounds := img.Bounds()
	height := bounds.Dy()
	charset := a.charset()

	lines := make([]string, height)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := range height {
		g.Go(func() error {
			lines[y] = a.renderRow(img, bounds.Min.Y+y, charset)
			return nil
		})
	}

	// rows never fail
	_ = g.Wait()

	return lines
}

func (a *AsciiConverter) renderRow(img *image.NRGBA, y int, charset []rune) string {
	bounds := img.Bounds()
	width := bounds.Dx()

	reserve := a.BytesPerCharToReserve
	if a.UseColor {
		reserve += a.AdditionalBytesPerCharColor
	}

	var lineBuilder strings.Builder
	lineBuilder.Grow(int(reserve * float64(width)))

	for x := range width {
		i := img.PixOffset(bounds.Min.X+x, y)
		px := color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}

		lum, composited := a.ToneMap(px)
		ch := Quantize(lum, charset, a.Invert)

		if a.UseColor {
			writeTrueColor(&lineBuilder, composited, ch)
		} else {
			lineBuilder.WriteRune(ch)
		}
	}

	return lineBuilder.String()
}
