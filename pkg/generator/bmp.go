// bmp.go — Uncompressed BMP encoder backed by golang.org/x/image/bmp.
// Opaque images are written as 24-bit BGR rows.
package generator

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

func encodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
