// The asciiart package implements the logic for generating ascii art from some image.
// By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See ConvertBytes(), ConvertReader() and ConvertPath().
// Animated GIFs are handled frame by frame, see ConvertGIFBytes() and ConvertAnimatedBytes().
// To support other image formats, either use Convert() instead or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// While all fields are public, treat the AsciiConverter struct as immutable. An immutable converter is safe for concurrent use.
package asciiart
