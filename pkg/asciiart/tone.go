package asciiart

import (
	"image/color"
	"math"
)

// Luminance returns the BT.709 weighted luminance (0-1) of a gamma encoded rgb triple. It is not linearized.
func Luminance(r, g, b uint8) float64 {
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// clamp01 also maps NaN to 0, so a bogus configuration can never produce an out of range index.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}

/*
ToneMap turns a pixel into the luminosity (0-1) used for character selection. The adjustments run in a fixed order:

	1. Alpha compositing onto black (only if A < 255)
	2. Luminance of the composited rgb
	3. Brightness offset (clamped)
	4. Threshold, if set. Gamma and contrast are skipped.
	5. Otherwise gamma, then contrast around 0.5 (clamped)

The composited color is returned as well, since that is the color the character gets painted with.
*/
func (a *AsciiConverter) ToneMap(c color.NRGBA) (float64, color.NRGBA) {
	if c.A < 255 {
		af := float64(c.A) / 255
		c = color.NRGBA{
			R: uint8(float64(c.R) * af),
			G: uint8(float64(c.G) * af),
			B: uint8(float64(c.B) * af),
			A: c.A,
		}
	}

	lum := Luminance(c.R, c.G, c.B)

	if a.Brightness != 0 {
		lum = clamp01(lum + a.Brightness)
	}

	if a.UseThreshold {
		if uint8(math.Round(lum*255)) >= a.Threshold {
			return 1, c
		}
		return 0, c
	}

	if a.Gamma != 1 && a.Gamma > 0 {
		lum = math.Pow(lum, 1/a.Gamma)
	}

	if a.Contrast != 1 {
		lum = clamp01((lum-0.5)*a.Contrast + 0.5)
	}

	return lum, c
}
