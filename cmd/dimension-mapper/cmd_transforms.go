package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dimension-mapper/internal/transform"
)

func newTransformsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transforms [name]",
		Short: "List the registered transforms, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if len(args) == 1 {
				t := a.registry.Get(args[0])
				if t == nil {
					return a.unknownTransform(args[0])
				}

				describeTransform(w, t)

				return w.Flush()
			}

			fmt.Fprintln(w, "NAME\tKIND\tDESCRIPTION")

			for _, t := range a.registry.All() {
				desc := t.Def.Description
				if t.Def.Deprecated != "" {
					desc += " (deprecated: " + t.Def.Deprecated + ")"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Def.Name, t.Kind, desc)
			}

			return w.Flush()
		},
	}
}

func describeTransform(w io.Writer, t *transform.Transform) {
	fmt.Fprintf(w, "name:\t%s\n", t.Def.Name)
	fmt.Fprintf(w, "kind:\t%s\n", t.Kind)

	if t.Kind == transform.KindScale {
		factor := "1 (default)"
		if t.Def.Factor != nil {
			factor = strconv.FormatFloat(*t.Def.Factor, 'g', -1, 64)
		}

		fmt.Fprintf(w, "factor:\t%s\n", factor)
		fmt.Fprintf(w, "offset:\t%g\n", t.Def.Offset)
	}

	if t.UsesIndex() {
		fmt.Fprintf(w, "index weight:\t%g\n", t.Def.IndexWeight)
	}

	if t.Def.Description != "" {
		fmt.Fprintf(w, "description:\t%s\n", t.Def.Description)
	}

	if t.Def.Deprecated != "" {
		fmt.Fprintf(w, "deprecated:\t%s\n", t.Def.Deprecated)
	}
}
