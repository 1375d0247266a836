package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimension-mapper/dimension"
)

func newShapeCmd(a *app) *cobra.Command {
	var opts documentFlags

	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Print the lengths of a document at every level",
		Long: `Prints the shape of a document, e.g. "2{3, 1}" for two rows of
three and one leaves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, depth, err := a.load(cmd, &opts)
			if err != nil {
				return err
			}

			shape, err := dimension.ShapeOf(depth, doc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d leaves)\n", shape, shape.Leaves())

			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
