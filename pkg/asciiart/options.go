package asciiart

import "log/slog"

// WithWidth specifies the target width in characters. Values <= 0 leave the width unset.
func WithWidth(width int) AsciiOption {
	return func(a *AsciiConverter) {
		a.Width = width
	}
}

/*
WithHeight specifies the target height in characters, before aspect correction. The actual amount of rows is height / aspect.

Values <= 0 leave the height unset.
*/
func WithHeight(height int) AsciiOption {
	return func(a *AsciiConverter) {
		a.Height = height
	}
}

/*
WithScale multiplies the target size. If neither width nor height is set, the scale is applied to the source dimensions directly.

NOTE: Scale is ignored when both width and height are set.
*/
func WithScale(scale float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.Scale = scale
	}
}

/*
WithCharset specifies the characters to use, ordered from the lightest to the densest. Any unicode characters work, but wide characters will distort the output.

An empty charset falls back to DefaultCharset.
*/
func WithCharset(charset string) AsciiOption {
	return func(a *AsciiConverter) {
		a.Charset = charset
	}
}

// WithInvert swaps the mapping so that dark pixels use the lightest characters. Useful on light terminal backgrounds.
func WithInvert(invert bool) AsciiOption {
	return func(a *AsciiConverter) {
		a.Invert = invert
	}
}

/*
WithColor enables/disables color. Every character gets wrapped in a 24 bit ANSI escape sequence.

NOTE: Ensure that your terminal supports true color. The converter does not check.
*/
func WithColor(useColor bool) AsciiOption {
	return func(a *AsciiConverter) {
		a.UseColor = useColor
	}
}

// WithBrightness adds brightness to the luminosity of every pixel. Use a value between -1 and 1.
func WithBrightness(brightness float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.Brightness = brightness
	}
}

// WithGamma sets the gamma correction. 1 disables it, as does any value <= 0.
func WithGamma(gamma float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.Gamma = gamma
	}
}

// WithContrast sets the contrast factor around the midpoint. 1 disables it.
func WithContrast(contrast float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.Contrast = contrast
	}
}

/*
WithThreshold renders the image in two tones. Pixels with a luminosity (0-255) of at least threshold use the densest character, all others the lightest.

NOTE: Gamma and contrast have no effect while a threshold is set.
*/
func WithThreshold(threshold uint8) AsciiOption {
	return func(a *AsciiConverter) {
		a.UseThreshold = true
		a.Threshold = threshold
	}
}

// WithoutThreshold disables thresholding
func WithoutThreshold() AsciiOption {
	return func(a *AsciiConverter) {
		a.UseThreshold = false
		a.Threshold = 0
	}
}

/*
WithAspect specifies the height/width ratio of a character cell. Most terminal fonts are about twice as tall as they are wide, hence the default of 2. Use 1 for square pixels.

Values <= 0 fall back to DefaultAspect.
*/
func WithAspect(aspect float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.Aspect = aspect
	}
}

// WithFilter specifies the resampling filter used to resize the image
func WithFilter(filter FilterType) AsciiOption {
	return func(a *AsciiConverter) {
		a.Filter = filter
	}
}

// WithLogger sets the logger for debug diagnostics
func WithLogger(logger *slog.Logger) AsciiOption {
	return func(a *AsciiConverter) {
		a.Logger = logger
	}
}

func WithByteReserve(bytesPerCharToReserve float64) AsciiOption {
	if bytesPerCharToReserve <= 0 {
		bytesPerCharToReserve = bytesPerCharReserve
	}

	return func(a *AsciiConverter) {
		a.BytesPerCharToReserve = bytesPerCharToReserve
	}
}

func WithColorBytesReserve(additionalBytesPerCharToReserve float64) AsciiOption {
	if additionalBytesPerCharToReserve < 0 {
		additionalBytesPerCharToReserve = 0
	}

	return func(a *AsciiConverter) {
		a.AdditionalBytesPerCharColor = additionalBytesPerCharToReserve
	}
}
