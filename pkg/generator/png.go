// png.go — PNG encoder.
package generator

import (
	"image"
	"image/png"
	"io"
)

// pngEncoder uses the default compression level; opaque RGBA input is
// written as 8-bit truecolor without an alpha channel.
var pngEncoder = &png.Encoder{CompressionLevel: png.DefaultCompression}

func encodePNG(w io.Writer, img image.Image) error {
	return pngEncoder.Encode(w, img)
}
