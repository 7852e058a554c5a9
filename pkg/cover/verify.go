// verify.go — Check written faces against their book.
package cover

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/azitti/bookcovers/pkg/generator"
	"github.com/k1LoW/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Verify decodes the image at path and checks that it is exactly size and
// that every pixel equals fill.
func Verify(path string, size Size, fill generator.RGB) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	img, err := decodeFile(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() != size.Width || b.Dy() != size.Height {
		return fmt.Errorf("%s: size %dx%d, want %dx%d", path, b.Dx(), b.Dy(), size.Width, size.Height)
	}

	want := fill.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if got != want {
				return fmt.Errorf("%s: pixel (%d,%d) is #%02x%02x%02x (alpha %d), want %s",
					path, x-b.Min.X, y-b.Min.Y, got.R, got.G, got.B, got.A, fill)
			}
		}
	}
	return nil
}

// VerifyFace checks face f of book b as written by g.
func (g *Generator) VerifyFace(b Book, f Face) (Result, error) {
	fill, err := generator.ParseColor(b.Color)
	if err != nil {
		return Result{}, errors.WithStack(fmt.Errorf("book %q: %w", b.Name, err))
	}
	path := g.Path(b, f)
	if err := Verify(path, b.Size(f), fill); err != nil {
		return Result{}, err
	}
	return Result{Book: b.Name, Face: f, Path: path}, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("%s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
