package asciiart

import "math"

// MaxTargetSize caps each dimension of the character grid.
const MaxTargetSize = 1 << 16

func (a *AsciiConverter) aspect() float64 {
	if a.Aspect > 0 {
		return a.Aspect
	}
	return DefaultAspect
}

/*
TargetSize computes the character grid (columns, rows) for a source image of srcWidth x srcHeight pixels. The first matching case wins:

	- Width and Height set: tw = Width, th = Height / aspect. Scale is ignored.
	- Only Width set:       tw = Width, th = (h / aspect) * (tw / w), then both are multiplied by Scale (if set).
	- Only Height set:      th = Height / aspect, tw = w * (th * aspect / h), then both are multiplied by Scale (if set).
	- Only Scale set:       tw = w * Scale, th = (h / aspect) * Scale.
	- Nothing set:          tw = DefaultWidth, th = (h / aspect) * (tw / w).

Both dimensions are rounded to the nearest integer and clamped to [1, MaxTargetSize], so huge or infinite scales can not overflow.
*/
func (a *AsciiConverter) TargetSize(srcWidth, srcHeight int) (int, int) {
	aspect := a.aspect()
	w, h := float64(max(srcWidth, 1)), float64(max(srcHeight, 1))

	widthSet, heightSet, scaleSet := a.Width > 0, a.Height > 0, a.Scale > 0

	var tw, th float64
	switch {
	case widthSet && heightSet:
		tw = float64(a.Width)
		// only the explicit height gets aspect corrected
		th = float64(a.Height) / aspect
	case widthSet:
		tw = float64(a.Width)
		th = (h / aspect) * (tw / w)
		if scaleSet {
			tw *= a.Scale
			th *= a.Scale
		}
	case heightSet:
		th = float64(a.Height) / aspect
		// inverse of the width case, keep it as is
		tw = w * (th * aspect / h)
		if scaleSet {
			tw *= a.Scale
			th *= a.Scale
		}
	case scaleSet:
		tw = w * a.Scale
		th = (h / aspect) * a.Scale
	default:
		tw = DefaultWidth
		th = (h / aspect) * (tw / w)
	}

	return clampDim(tw), clampDim(th)
}

// clampDim rounds v into [1, MaxTargetSize]. NaN maps to 1, +Inf to MaxTargetSize.
func clampDim(v float64) int {
	if math.IsNaN(v) {
		return 1
	}
	return int(math.Round(min(max(v, 1), MaxTargetSize)))
}
