// Package cmdutil holds helpers shared by the example programs.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

// ErrNoImage is returned by FindImage if the directory holds no supported image.
var ErrNoImage = errors.New("no image found")

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif"}

// IsImage reports whether path has one of the extensions the examples pick up.
func IsImage(path string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(path)))
}

// FindImage returns the first image in dir, in lexical order. Subdirectories are not searched.
func FindImage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if !e.IsDir() && IsImage(e.Name()) {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("%w in %s", ErrNoImage, dir)
}

// Timing is how long one conversion took.
type Timing struct {
	Path       string
	Conversion time.Duration
	Total      time.Duration
}

// ConvertImage converts the image at path and writes it to w followed by a blank line.
func ConvertImage(w io.Writer, a *asciiart.AsciiConverter, path string) (Timing, error) {
	start := time.Now()

	art, err := a.ConvertPath(path)
	if err != nil {
		return Timing{Path: path}, fmt.Errorf("convert %s: %w", path, err)
	}

	timeTaken := time.Since(start)

	if _, err := fmt.Fprintf(w, "%s\n\n", art); err != nil {
		return Timing{Path: path}, err
	}

	return Timing{Path: path, Conversion: timeTaken, Total: time.Since(start)}, nil
}

/*
ConvertImages walks dir and converts every image in it (see IsImage), printing the name, the art and the time it took. Images that fail to convert are reported and skipped, the walk stops only on I/O errors of dir itself.
*/
func ConvertImages(w io.Writer, a *asciiart.AsciiConverter, dir string) ([]Timing, error) {
	var timings []Timing

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !IsImage(path) {
			return nil
		}

		fmt.Fprintf(w, "Image: %s\n", d.Name())

		timing, err := ConvertImage(w, a, path)
		if err != nil {
			fmt.Fprintf(w, "Error converting to ascii: %s\n", err)
			return nil
		}

		fmt.Fprintf(w, "Conversion took %dms\n", timing.Conversion.Milliseconds())
		fmt.Fprintf(w, "Printing and conversion took %dms\n", timing.Total.Milliseconds())

		timings = append(timings, timing)
		return nil
	})
	if err != nil {
		return timings, err
	}

	return timings, nil
}
