package main

import (
	"fmt"

	"github.com/azitti/bookcovers/pkg/cover"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	sel := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "check that written covers have the expected size and color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, books, err := sel.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := cover.NewGenerator(m.OutDir, m.Format, cover.WithLogger(opts.logger))
			if err != nil {
				return err
			}
			for _, b := range books {
				for _, f := range cover.Faces {
					r, err := g.VerifyFace(b, f)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "OK %s\n", r.Path)
				}
			}
			return nil
		},
	}
	sel.bindSelection(cmd)
	return cmd
}
