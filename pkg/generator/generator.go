// Package generator synthesizes uniformly colored raster images and writes
// them in a lossless format.
//
// All output follows one pipeline: build a solid image.Image, then encode it
// with the format selected by the output file extension.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Config holds parameters for image generation.
type Config struct {
	Width  int // Pixel width
	Height int // Pixel height
	Fill   RGB // Uniform fill color
}

// Generate creates the image described by cfg and writes it to output,
// replacing any existing file. The format is inferred from the extension
// (see Formats).
//
// The file is written through a temporary file in the same directory and
// renamed into place, so a failed run never leaves a partial file at output.
func Generate(output string, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(output))
	if _, ok := encoders[ext]; !ok {
		return fmt.Errorf("unsupported format %q: use one of %s", ext, strings.Join(Formats(), ", "))
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	return writeFile(output, func(w io.Writer) error {
		return GenerateToWriter(w, ext, cfg)
	})
}

// GenerateToWriter encodes the image described by cfg to w. ext selects the
// format (".png", ".bmp", ".tif" or ".tiff").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return fmt.Errorf("unsupported format %q: use one of %s", ext, strings.Join(Formats(), ", "))
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	img := NewSolidImage(cfg.Width, cfg.Height, cfg.Fill)
	if err := enc.encode(w, img); err != nil {
		return fmt.Errorf("encode %s: %w", enc.name, err)
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: width and height must be positive", cfg.Width, cfg.Height)
	}
	return nil
}

// writeFile streams encode's output into a temp file next to output and
// renames it over output once it is complete and synced. The temp file is
// created with mode 0666 so the process umask decides the final permissions.
func writeFile(output string, encode func(io.Writer) error) (err error) {
	tmp := filepath.Join(filepath.Dir(output), fmt.Sprintf(".%s.%s.tmp", filepath.Base(output), uuid.New().String()))
	f, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := encode(f); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	if err := os.Rename(tmp, output); err != nil {
		return fmt.Errorf("rename %s: %w", output, err)
	}
	return nil
}
