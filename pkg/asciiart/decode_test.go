package asciiart_test

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

func TestDecodeRegisteredFormats(t *testing.T) {
	src := newTestImage(4, 2, uniform(gray(255)))

	encoders := map[string]func(io.Writer, image.Image) error{
		"png": func(w io.Writer, img image.Image) error {
			_, err := w.Write(encodePNG(t, img))
			return err
		},
		"jpeg": func(w io.Writer, img image.Image) error { return jpeg.Encode(w, img, &jpeg.Options{Quality: 100}) },
		"gif":  func(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) },
		"bmp":  bmp.Encode,
		"tiff": func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf, src))

			img, err := asciiart.DecodeBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

			px := img.NRGBAAt(1, 1)
			assert.InDelta(t, 255, int(px.R), 2)
			assert.Equal(t, uint8(255), px.A)

			out, err := asciiart.New(asciiart.WithScale(1), asciiart.WithAspect(1)).ConvertBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, "@@@@\n@@@@", out)
		})
	}
}
