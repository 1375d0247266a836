package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimension-mapper/dimension"
	"dimension-mapper/internal/nested"
)

func newCheckCmd(a *app) *cobra.Command {
	var opts documentFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report where a document deviates from its declared depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, &opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts *documentFlags) error {
	doc, depth, err := a.load(cmd, opts)
	if err != nil {
		return err
	}

	diags := nested.Check(doc, depth)
	w := cmd.OutOrStdout()

	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if !diags.IsValid() {
		return fmt.Errorf("%d problem(s) found at depth %d", len(diags.Errors), depth)
	}

	shape, err := dimension.ShapeOf(depth, doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "ok: depth %d, %d leaves\n", depth, shape.Leaves())

	return nil
}
