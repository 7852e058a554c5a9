package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)


type globalOptions struct {
	verbose bool
	logFile string

	logger  *slog.Logger
	closeFn func() error
}

// run executes the command line and returns the process exit status.
func run(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	opts := &globalOptions{}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := root.ExecuteContext(ctx)
	if opts.closeFn != nil {
		if cerr := opts.closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fatal(stderr, err, opts.verbose)
		return 1
	}
	return 0
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	gen := &generateOptions{}
	root := &cobra.Command{
		Use:           "bookcovers",
		Short:         "bookcovers writes solid-color spine and back cover placeholders",
		Long:          `bookcovers writes solid-color spine and back cover placeholder images for the books of a library asset collection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging and stack traces on error")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file")
	gen.bind(root)

	root.AddCommand(newGenerateCmd(opts), newVerifyCmd(opts), newInitCmd())
	return root
}

// setupLogger logs text to stderr and, with --log-file, JSON to the file.
func (o *globalOptions) setupLogger(stderr io.Writer) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.WithStack(fmt.Errorf("open log file: %w", err))
		}
		o.closeFn = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	o.logger = slog.New(slogmulti.Fanout(handlers...))
	return nil
}

func fatal(w io.Writer, err error, verbose bool) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errPrefix(w), err)
	if !verbose {
		return
	}
	b, merr := json.MarshalIndent(errors.StackTraces(err), "", "  ")
	if merr != nil {
		_, _ = fmt.Fprintf(w, "%v\n", merr)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\n", b)
}

// errPrefix returns "Error:", red only when w is a terminal.
func errPrefix(w io.Writer) string {
	c := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("Error:")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
