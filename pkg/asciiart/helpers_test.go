package asciiart_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestImage(width, height int, fill func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	return img
}

func uniform(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(_, _ int) color.NRGBA { return c }
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

func encodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var testPalette = color.Palette{
	color.NRGBA{A: 255},
	color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	color.NRGBA{R: 255, A: 255},
}

const (
	palBlack = 0
	palWhite = 1
	palRed   = 2
)

func paletted(rect image.Rectangle, idx uint8) *image.Paletted {
	p := image.NewPaletted(rect, testPalette)
	for i := range p.Pix {
		p.Pix[i] = idx
	}
	return p
}

func encodeGIF(t testing.TB, frames []*image.Paletted, disposal []byte) []byte {
	t.Helper()

	g := &gif.GIF{
		Image:    frames,
		Delay:    make([]int, len(frames)),
		Disposal: disposal,
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}
