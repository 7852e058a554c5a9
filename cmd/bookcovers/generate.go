package main

import (
	"fmt"

	"github.com/azitti/bookcovers/pkg/cover"
	"github.com/azitti/bookcovers/pkg/generator"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	outDir       string
	manifestPath string
	books        []string
	color        string
	format       string
	mkdir        bool
	concurrency  int
}

func (o *generateOptions) bindSelection(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.outDir, "out", "o", cover.DefaultOutDir, "output root; each book is a directory below it")
	f.StringVarP(&o.manifestPath, "manifest", "m", "", "covers.yml describing the books")
	f.StringSliceVarP(&o.books, "book", "b", nil, "book directory name(s) (default: all manifest books, or "+cover.DefaultBook+")")
	f.StringVar(&o.color, "color", "", "fill color for every book as #rrggbb (default "+cover.DefaultColor+")")
	f.StringVar(&o.format, "format", "", "image format: png, bmp, tif or tiff (default "+cover.DefaultFormat+"); png and bmp store 3-channel RGB, tiff stores RGBA with an opaque alpha channel")
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	o.bindSelection(cmd)
	f := cmd.Flags()
	f.BoolVar(&o.mkdir, "mkdir", false, "create missing book directories")
	f.IntVarP(&o.concurrency, "concurrency", "j", 1, "books generated in parallel")
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "write the spine and back cover of each book",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	gen.bind(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, o *generateOptions) error {
	m, books, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	g, err := cover.NewGenerator(m.OutDir, m.Format,
		cover.WithMkdir(o.mkdir),
		cover.WithConcurrency(o.concurrency),
		cover.WithLogger(opts.logger),
	)
	if err != nil {
		return err
	}

	opts.logger.Debug("generating covers", "books", len(books), "out", m.OutDir, "format", m.Format)
	if _, err := g.GenerateAll(cmd.Context(), books); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cover.Summary(books))
	return err
}

// resolve merges the manifest (or the built-in default) with command line
// overrides and returns the validated manifest and the selected books.
func (o *generateOptions) resolve(cmd *cobra.Command) (_ *cover.Manifest, _ []cover.Book, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	var m *cover.Manifest
	selected := o.books
	if o.manifestPath != "" {
		m, err = cover.LoadManifest(o.manifestPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		m = cover.DefaultManifest()
		if len(o.books) > 0 {
			m.Books = nil
			for _, name := range o.books {
				m.Books = append(m.Books, cover.Book{Name: name})
			}
			selected = nil
		}
	}

	if cmd.Flags().Changed("out") || m.OutDir == "" {
		m.OutDir = o.outDir
	}
	if o.format != "" {
		m.Format = o.format
	}
	if o.color != "" {
		c, err := generator.ParseColor(o.color)
		if err != nil {
			return nil, nil, err
		}
		for i := range m.Books {
			m.Books[i].Color = c.String()
		}
	}
	cover.ApplyDefaults(m)

	if err := cover.Validate(m); err != nil {
		return nil, nil, fmt.Errorf("invalid manifest: %w", err)
	}
	books, err := m.Select(selected)
	if err != nil {
		return nil, nil, err
	}
	return m, books, nil
}
