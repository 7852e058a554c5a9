// validator.go — Manifest validation.
package cover

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/azitti/bookcovers/pkg/generator"
	"github.com/k1LoW/errors"
)

// Validate checks a manifest after defaults are applied. Every problem is
// reported; the returned error joins them.
func Validate(m *Manifest) error {
	var errs []error

	if !generator.Supported("." + m.Format) {
		errs = append(errs, fmt.Errorf("unsupported format %q: use one of %s", m.Format, strings.Join(generator.Formats(), ", ")))
	}
	if len(m.Books) == 0 {
		errs = append(errs, fmt.Errorf("manifest has no books"))
	}

	seen := make(map[string]struct{}, len(m.Books))
	for i, b := range m.Books {
		label := fmt.Sprintf("books[%d]", i)
		if b.Name != "" {
			label = fmt.Sprintf("book %q", b.Name)
		}

		switch {
		case b.Name == "":
			errs = append(errs, fmt.Errorf("%s: name is required", label))
		case b.Name == "." || b.Name == ".." || strings.ContainsAny(b.Name, `/\`) || filepath.IsAbs(b.Name):
			errs = append(errs, fmt.Errorf("%s: name must be a single directory name", label))
		}
		if _, dup := seen[b.Name]; dup && b.Name != "" {
			errs = append(errs, fmt.Errorf("%s: duplicate name", label))
		}
		seen[b.Name] = struct{}{}

		if _, err := generator.ParseColor(b.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
		for _, f := range Faces {
			if s := b.Size(f); s.Width <= 0 || s.Height <= 0 {
				errs = append(errs, fmt.Errorf("%s: %s size %dx%d must be positive", label, f, s.Width, s.Height))
			}
		}
	}

	return errors.Join(errs...)
}
