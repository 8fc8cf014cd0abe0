package asciiart

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// FilterType selects the resampling filter used to resize the source image to the character grid.
type FilterType int

const (
	// Triangle is a linear (tent) filter. It is the default.
	Triangle FilterType = iota
	// Nearest picks the nearest source pixel. Fastest, but aliases heavily when downscaling.
	Nearest
	// Box averages the covered source pixels
	Box
	// CatmullRom is a sharp cubic filter
	CatmullRom
	// Gaussian is a soft, blurring filter
	Gaussian
	// Lanczos is a high quality (and the slowest) filter
	Lanczos
)

var filterNames = [...]string{
	Triangle:   "triangle",
	Nearest:    "nearest",
	Box:        "box",
	CatmullRom: "catmullrom",
	Gaussian:   "gaussian",
	Lanczos:    "lanczos",
}

// FilterNames lists the names accepted by ParseFilter, in declaration order
func FilterNames() []string {
	return append([]string(nil), filterNames[:]...)
}

func (f FilterType) String() string {
	if f >= 0 && int(f) < len(filterNames) {
		return filterNames[f]
	}
	return fmt.Sprintf("FilterType(%d)", int(f))
}

/*
ParseFilter maps a filter name (case insensitive) to a FilterType. Besides the canonical names from FilterNames(), "linear", "bilinear" and "lanczos3" are accepted as aliases.
*/
func ParseFilter(name string) (FilterType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "triangle", "linear", "bilinear":
		return Triangle, nil
	case "nearest", "nearestneighbor":
		return Nearest, nil
	case "box":
		return Box, nil
	case "catmullrom", "cubic":
		return CatmullRom, nil
	case "gaussian":
		return Gaussian, nil
	case "lanczos", "lanczos3":
		return Lanczos, nil
	default:
		return Triangle, fmt.Errorf("unknown resample filter %q", name)
	}
}

func (f FilterType) imagingFilter() imaging.ResampleFilter {
	switch f {
	case Nearest:
		return imaging.NearestNeighbor
	case Box:
		return imaging.Box
	case CatmullRom:
		return imaging.CatmullRom
	case Gaussian:
		return imaging.Gaussian
	case Lanczos:
		return imaging.Lanczos
	default:
		return imaging.Linear
	}
}

/*
Resample resizes img to exactly targetWidth x targetHeight pixels using the configured Filter. It never crops or letterboxes, so the source aspect ratio is not preserved unless the target was derived from it (see TargetSize).

Non-positive targets are clamped to 1. The result is a fresh buffer, img is never modified.
*/
func (a *AsciiConverter) Resample(img image.Image, targetWidth, targetHeight int) *image.NRGBA {
	return imaging.Resize(img, max(targetWidth, 1), max(targetHeight, 1), a.Filter.imagingFilter())
}
