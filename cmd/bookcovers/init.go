package main

import (
	"fmt"
	"os"

	"github.com/azitti/bookcovers/pkg/cover"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var out string
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "write a sample covers.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", out)
				}
			}
			if err := os.WriteFile(out, []byte(cover.ExampleManifest()), 0o644); err != nil {
				return errors.WithStack(fmt.Errorf("write manifest: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Run: bookcovers --manifest %s --mkdir\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "manifest", "m", "covers.yml", "output path for the sample manifest")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
