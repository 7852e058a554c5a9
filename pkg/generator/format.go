package generator

import (
	"image"
	"io"
	"sort"
)

type encoder struct {
	name   string
	encode func(io.Writer, image.Image) error
}

// encoders maps a lowercase file extension to its lossless encoder.
var encoders = map[string]encoder{
	".png":  {name: "PNG", encode: encodePNG},
	".bmp":  {name: "BMP", encode: encodeBMP},
	".tif":  {name: "TIFF", encode: encodeTIFF},
	".tiff": {name: "TIFF", encode: encodeTIFF},
}

// Formats returns the supported output extensions, sorted.
func Formats() []string {
	exts := make([]string, 0, len(encoders))
	for ext := range encoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether ext (with leading dot) names a supported format.
func Supported(ext string) bool {
	_, ok := encoders[ext]
	return ok
}
