// tiff.go — Deflate-compressed TIFF encoder.
// Images are stored as 4-sample RGBA with an opaque alpha channel.
package generator

import (
	"image"
	"io"

	"golang.org/x/image/tiff"
)

var tiffOptions = &tiff.Options{Compression: tiff.Deflate}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, tiffOptions)
}
