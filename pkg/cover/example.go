// example.go — Sample manifest for `bookcovers init`, and the run summary.
package cover

import (
	"fmt"

	"github.com/azitti/bookcovers/pkg/generator"
)

// ExampleManifest returns a sample covers.yml.
func ExampleManifest() string {
	return `# Placeholder covers for the book library.
# Each book gets <outDir>/<name>/Spine.<format> and BackCover.<format>.
outDir: assets/books
format: png
books:
  - name: UniverseInANutshell
    title: The Universe in a Nutshell
    color: "#1b161c"
    spine: { width: 200, height: 800 }
    backCover: { width: 600, height: 800 }
  - name: BriefAnswersToBigQuestions
    title: Brief Answers to the Big Questions
    color: "#ffffff"
`
}

// Summary returns the confirmation line printed after every face of books
// has been written.
func Summary(books []Book) string {
	if len(books) == 0 {
		return "No books to generate"
	}
	c := normColor(books[0].Color)
	for _, b := range books[1:] {
		if normColor(b.Color) != c {
			return fmt.Sprintf("Created spine and back cover images for %d books", len(books))
		}
	}
	return fmt.Sprintf("Created spine and back cover images with color %s", c)
}

func normColor(s string) string {
	if c, err := generator.ParseColor(s); err == nil {
		return c.String()
	}
	return s
}
