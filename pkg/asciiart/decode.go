package asciiart

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	// imaging registers png, jpeg, gif, bmp and tiff, webp is decode only and added here
	_ "golang.org/x/image/webp"
)

// DecodeError reports image bytes that are not a valid or supported image container.
type DecodeError struct {
	// Op names the decoding step that failed, e.g. "decode" or "decode gif".
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

/*
Decode reads one image from r and returns it as an NRGBA buffer anchored at (0, 0). Image formats supported are png, jpeg, gif (first frame), bmp, tiff and webp. Other formats can be registered the usual way with image.RegisterFormat().

Every error, including read errors of r, is returned as *DecodeError.
*/
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, &DecodeError{Op: "decode", Err: err}
	}

	return imaging.Clone(img), nil
}

// DecodeBytes decodes an image held in memory. See Decode().
func DecodeBytes(b []byte) (*image.NRGBA, error) {
	return Decode(bytes.NewReader(b))
}

/*
DecodePath reads and decodes the image at path. Errors reading the file are returned unchanged (so errors.Is(err, fs.ErrNotExist) works), invalid contents as *DecodeError.
*/
func DecodePath(path string) (*image.NRGBA, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeBytes(b)
}
