// manifest.go — Load covers.yml manifests.
package cover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/errors"
)

// LoadManifest reads and parses a covers.yml file, applies defaults to every
// book and resolves a relative outDir against the manifest's directory.
func LoadManifest(path string) (_ *Manifest, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return parseManifest(b, filepath.Dir(path))
}

func parseManifest(b []byte, baseDir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.OutDir != "" && !filepath.IsAbs(m.OutDir) {
		m.OutDir = filepath.Join(baseDir, m.OutDir)
	}
	ApplyDefaults(&m)
	return &m, nil
}

// ApplyDefaults fills zero-valued fields with the library defaults and
// normalizes the format name.
func ApplyDefaults(m *Manifest) {
	m.Format = strings.ToLower(strings.TrimPrefix(m.Format, "."))
	if m.Format == "" {
		m.Format = DefaultFormat
	}
	for i := range m.Books {
		b := &m.Books[i]
		if b.Color == "" {
			b.Color = DefaultColor
		}
		if b.Spine.Width == 0 && b.Spine.Height == 0 {
			b.Spine = DefaultSpine
		}
		if b.BackCover.Width == 0 && b.BackCover.Height == 0 {
			b.BackCover = DefaultBackCover
		}
	}
}

// Select returns the books whose names are in names, in manifest order.
// An empty names returns every book.
func (m *Manifest) Select(names []string) ([]Book, error) {
	if len(names) == 0 {
		return m.Books, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var books []Book
	for _, b := range m.Books {
		if want[b.Name] {
			books = append(books, b)
			delete(want, b.Name)
		}
	}
	if len(want) > 0 {
		var missing []string
		for _, n := range names {
			if want[n] {
				missing = append(missing, n)
			}
		}
		return nil, fmt.Errorf("unknown book(s) in manifest: %s", strings.Join(missing, ", "))
	}
	return books, nil
}
