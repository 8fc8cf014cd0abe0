package asciiart

import (
	"bytes"
	"image"
	"image/gif"
	"io"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

/*
ConvertFrames converts every frame on its own (see Convert) and returns the rendered frames in the same order. Frames may differ in size, each one gets its own target size.
*/
func (a *AsciiConverter) ConvertFrames(frames []image.Image) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		out = append(out, a.Convert(f))
	}

	return out
}

/*
DecodeGIFFrames decodes every frame of an animated GIF. GIF frames are usually partial updates, so each one is drawn onto a canvas of the logical screen size (honoring the disposal method of the previous frame) and a snapshot of the canvas is returned. Every returned buffer is therefore a complete, standalone image.

Errors are returned as *DecodeError.
*/
func DecodeGIFFrames(r io.Reader) ([]*image.NRGBA, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, &DecodeError{Op: "decode gif", Err: err}
	}

	return compositeGIF(g), nil
}

func compositeGIF(g *gif.GIF) []*image.NRGBA {
	// DecodeAll only accepts frames inside the logical screen
	canvas := image.NewNRGBA(image.Rect(0, 0, g.Config.Width, g.Config.Height))
	frames := make([]*image.NRGBA, 0, len(g.Image))

	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		xdraw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Over)
		frames = append(frames, imaging.Clone(canvas))

		switch disposal {
		case gif.DisposalBackground:
			xdraw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return frames
}

/*
ConvertGIFReader decodes an animated GIF and converts every frame. Decoding errors are returned as *DecodeError, no fallback is attempted (see ConvertAnimatedBytes for that).
*/
func (a *AsciiConverter) ConvertGIFReader(r io.Reader) ([]string, error) {
	frames, err := DecodeGIFFrames(r)
	if err != nil {
		return nil, err
	}

	a.logger().Debug("decoded gif", "frames", len(frames))

	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f
	}

	return a.ConvertFrames(imgs), nil
}

// ConvertGIFBytes is ConvertGIFReader for a GIF held in memory
func (a *AsciiConverter) ConvertGIFBytes(b []byte) ([]string, error) {
	return a.ConvertGIFReader(bytes.NewReader(b))
}

// ConvertGIFPath is ConvertGIFReader for the file at path. Errors reading the file are returned unchanged.
func (a *AsciiConverter) ConvertGIFPath(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return a.ConvertGIFBytes(b)
}

/*
ConvertAnimatedBytes converts b as an animated GIF. If b can not be decoded as one (not a GIF, or a damaged one), it falls back to decoding b as a single still image and returns exactly one frame.

Only if the fallback fails as well, the *DecodeError of the fallback is returned.
*/
func (a *AsciiConverter) ConvertAnimatedBytes(b []byte) ([]string, error) {
	frames, err := a.ConvertGIFBytes(b)
	if err == nil {
		return frames, nil
	}

	a.logger().Debug("animated decode failed, falling back to a single frame", "error", err)

	frame, err := a.ConvertBytes(b)
	if err != nil {
		return nil, err
	}

	return []string{frame}, nil
}

// ConvertAnimatedPath is ConvertAnimatedBytes for the file at path. Errors reading the file are returned unchanged.
func (a *AsciiConverter) ConvertAnimatedPath(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return a.ConvertAnimatedBytes(b)
}
