package asciiart

import "math"

var defaultCharsetRunes = []rune(DefaultCharset)

/*
Quantize maps a luminosity (0-1) onto one character of charset (ordered light to dense). The character is the one nearest to lum on an even scale, so both ends of the charset only cover half a step.

Out of range luminosity is clamped, so the result is always a member of charset. An empty charset falls back to DefaultCharset.
*/
func Quantize(lum float64, charset []rune, invert bool) rune {
	if len(charset) == 0 {
		charset = defaultCharsetRunes
	}

	v := lum
	if invert {
		v = 1 - lum
	}
	v = clamp01(v)

	idx := int(math.Round(v * float64(len(charset)-1)))
	return charset[idx]
}

func (a *AsciiConverter) charset() []rune {
	if a.Charset == "" {
		return defaultCharsetRunes
	}
	return []rune(a.Charset)
}

// MapLuminance maps lum onto the configured charset, honoring Invert. See Quantize().
func (a *AsciiConverter) MapLuminance(lum float64) rune {
	return Quantize(lum, a.charset(), a.Invert)
}
