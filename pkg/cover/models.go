// Package cover generates placeholder spine and back cover images for the
// books of a library asset collection.
package cover

// ── Manifest types ──

// Manifest is the top-level structure of a covers.yml file.
type Manifest struct {
	OutDir string `yaml:"outDir,omitempty"` // root of the per-book asset directories
	Format string `yaml:"format,omitempty"` // "png" (default), "bmp", "tif" or "tiff"
	Books  []Book `yaml:"books"`
}

// Book describes the placeholder faces of one book.
type Book struct {
	Name      string `yaml:"name"`            // directory under OutDir, e.g. "UniverseInANutshell"
	Title     string `yaml:"title,omitempty"` // display title, informational only
	Color     string `yaml:"color,omitempty"` // "#rrggbb" fill for both faces
	Spine     Size   `yaml:"spine,omitempty"`
	BackCover Size   `yaml:"backCover,omitempty"`
}

// Size is a pixel width and height.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ── Faces ──

// Face identifies one generated image of a book.
type Face int

const (
	Spine Face = iota
	BackCover
)

// Faces lists every face in generation order.
var Faces = []Face{Spine, BackCover}

// FileBase returns the file name of the face without extension.
func (f Face) FileBase() string {
	switch f {
	case Spine:
		return "Spine"
	case BackCover:
		return "BackCover"
	default:
		return "Unknown"
	}
}

func (f Face) String() string {
	switch f {
	case Spine:
		return "spine"
	case BackCover:
		return "back cover"
	default:
		return "unknown"
	}
}

// Size returns the configured dimensions of face f for b.
func (b Book) Size(f Face) Size {
	if f == Spine {
		return b.Spine
	}
	return b.BackCover
}

// Result records one written face.
type Result struct {
	Book string
	Face Face
	Path string
}

// ── Defaults ──

const (
	DefaultBook   = "UniverseInANutshell"
	DefaultColor  = "#1b161c"
	DefaultFormat = "png"
	DefaultOutDir = "assets/books"
)

var (
	DefaultSpine     = Size{Width: 200, Height: 800}
	DefaultBackCover = Size{Width: 600, Height: 800}
)

// DefaultManifest returns the single-book manifest used when no covers.yml
// is given.
func DefaultManifest() *Manifest {
	m := &Manifest{
		Books: []Book{{Name: DefaultBook, Title: "The Universe in a Nutshell"}},
	}
	ApplyDefaults(m)
	return m
}
