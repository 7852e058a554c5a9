// cover.go — Write spine and back cover images for books.
package cover

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/azitti/bookcovers/pkg/generator"
	"github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

// Generator writes cover faces under an output root.
type Generator struct {
	outDir      string
	ext         string
	mkdir       bool
	concurrency int
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMkdir creates missing book directories instead of failing.
func WithMkdir(enable bool) Option {
	return func(g *Generator) {
		g.mkdir = enable
	}
}

// WithConcurrency sets how many books are generated at once. Values below 1
// mean one at a time.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = max(n, 1)
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator writing <outDir>/<book>/<Face>.<format>.
func NewGenerator(outDir, format string, opts ...Option) (*Generator, error) {
	ext := "." + format
	if !generator.Supported(ext) {
		return nil, errors.WithStack(fmt.Errorf("unsupported format %q", format))
	}
	g := &Generator{
		outDir:      outDir,
		ext:         ext,
		concurrency: 1,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Path returns the output path of face f of book b.
func (g *Generator) Path(b Book, f Face) string {
	return filepath.Join(g.outDir, b.Name, f.FileBase()+g.ext)
}

// GenerateFace writes a single face of b.
func (g *Generator) GenerateFace(ctx context.Context, b Book, f Face) (_ Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	fill, err := generator.ParseColor(b.Color)
	if err != nil {
		return Result{}, fmt.Errorf("book %q: %w", b.Name, err)
	}

	path := g.Path(b, f)
	if g.mkdir {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Result{}, fmt.Errorf("create directory for %s: %w", path, err)
		}
	}

	size := b.Size(f)
	g.logger.Debug("generating face", slog.String("book", b.Name), slog.String("face", f.String()), slog.String("path", path))
	if err := generator.Generate(path, generator.Config{Width: size.Width, Height: size.Height, Fill: fill}); err != nil {
		return Result{}, fmt.Errorf("book %q %s: %w", b.Name, f, err)
	}
	g.logger.Info("wrote face",
		slog.String("book", b.Name),
		slog.String("face", f.String()),
		slog.String("path", path),
		slog.Int("width", size.Width),
		slog.Int("height", size.Height),
		slog.String("color", fill.String()),
	)
	return Result{Book: b.Name, Face: f, Path: path}, nil
}

// GenerateBook writes the spine then the back cover of b, stopping at the
// first failure.
func (g *Generator) GenerateBook(ctx context.Context, b Book) ([]Result, error) {
	results := make([]Result, 0, len(Faces))
	for _, f := range Faces {
		r, err := g.GenerateFace(ctx, b, f)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// GenerateAll writes every face of every book. Books run concurrently up to
// the configured limit; the first error cancels the remaining work. Results
// are returned in book order.
func (g *Generator) GenerateAll(ctx context.Context, books []Book) ([]Result, error) {
	perBook := make([][]Result, len(books))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, b := range books {
		eg.Go(func() error {
			r, err := g.GenerateBook(ctx, b)
			perBook[i] = r
			return err
		})
	}
	err := eg.Wait()

	var results []Result
	for _, r := range perBook {
		results = append(results, r...)
	}
	return results, err
}
