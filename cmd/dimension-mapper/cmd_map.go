package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dimension-mapper/dimension"
	"dimension-mapper/internal/binder"
	"dimension-mapper/internal/format"
	"dimension-mapper/internal/invariant"
	"dimension-mapper/internal/match"
	"dimension-mapper/internal/nested"
	"dimension-mapper/internal/transform"
)

type mapOptions struct {
	documentFlags

	transform string
	output    string
	dump      bool
}

func newMapCmd(a *app) *cobra.Command {
	var opts mapOptions

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Apply a transform to every leaf of a nested array",
		Long: `Applies a named transform to every leaf and writes the result with
the same shape as the input.

Example:
  echo '[[1, 4, 10], [5, 3, -1]]' | dimension-mapper map --depth 2 --transform double`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMap(cmd, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.transform, "transform", "t", "identity", "name of the transform to apply")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format, json or yaml (defaults to the config's)")
	cmd.Flags().BoolVar(&opts.dump, "debug-dump", false, "dump the mapped structure to stderr")

	return cmd
}

func (a *app) runMap(cmd *cobra.Command, opts *mapOptions) error {
	out, err := a.outputFormat(opts.output)
	if err != nil {
		return err
	}

	if !a.registry.Has(opts.transform) {
		return a.unknownTransform(opts.transform)
	}

	tr, ok := binder.LookupAs[*transform.Transform](a.namespace, transformPath(opts.transform))
	invariant.That(ok, "transform %q is registered but not bound", opts.transform)

	if tr.Def.Deprecated != "" {
		a.warner.Warn(fmt.Sprintf("transform %q is deprecated", tr.Def.Name),
			zap.String("note", tr.Def.Deprecated))
	}

	doc, depth, err := a.load(cmd, &opts.documentFlags)
	if err != nil {
		return err
	}

	diags := nested.Check(doc, depth)
	if !diags.IsValid() {
		return fmt.Errorf("document does not match depth %d: %w", depth, diags.Error())
	}

	a.logger.Info("Mapping document",
		zap.String("transform", tr.Def.Name),
		zap.Int("depth", depth),
		zap.Bool("indexed", tr.UsesIndex()))

	mapped, err := applyTransform(tr, depth, doc)
	if err != nil {
		return err
	}

	if opts.dump {
		fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(mapped))
	}

	data, err := nested.Encode(mapped, out)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}

// applyTransform maps tr over a checked document. The index path is only
// built when the transform reads it.
func applyTransform(tr *transform.Transform, depth int, doc any) (any, error) {
	if tr.UsesIndex() {
		return dimension.MapIndexed(depth, doc, func(leaf any, path dimension.IndexPath) float64 {
			return tr.Apply(number(leaf, path), path)
		})
	}

	return dimension.Map(depth, doc, func(leaf any) float64 {
		return tr.Apply(number(leaf, nil), nil)
	})
}

func number(leaf any, path dimension.IndexPath) float64 {
	x, ok := leaf.(float64)
	invariant.That(ok, "leaf %s is %T after the document check", path, leaf)

	return x
}

// unknownTransform builds the error for a transform name missing from the
// registry, suggesting the closest registered names.
func (a *app) unknownTransform(name string) error {
	names := a.registry.Names()

	if suggestions := match.Suggest(name, names, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown transform %q, did you mean %s?", name, quoteJoin(suggestions))
	}

	return fmt.Errorf("unknown transform %q (available: %s)", name, strings.Join(names, ", "))
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}

	return strings.Join(quoted, " or ")
}

func (a *app) outputFormat(flag string) (format.Kind, error) {
	if flag != "" {
		k, err := format.Parse(flag)
		if err != nil {
			return 0, fmt.Errorf("--output: %w", err)
		}

		return k, nil
	}

	return a.cfg.OutputFormat()
}
