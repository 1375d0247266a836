package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dimension-mapper/internal/format"
	"dimension-mapper/internal/nested"
)

// documentFlags are shared by the commands that read a document.
type documentFlags struct {
	input       string
	inputFormat string
	depth       int
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "document to read, - for stdin")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "json", "format of stdin or of files without a known extension")
	cmd.Flags().IntVarP(&f.depth, "depth", "d", 0, "nesting depth, 0 to infer it")
}

// load reads the document and resolves its depth.
func (a *app) load(cmd *cobra.Command, f *documentFlags) (any, int, error) {
	def, err := format.Parse(f.inputFormat)
	if err != nil {
		return nil, 0, fmt.Errorf("--input-format: %w", err)
	}

	var doc any

	if f.input == "-" {
		doc, err = nested.Read(cmd.InOrStdin(), def)
	} else {
		doc, err = nested.LoadFile(f.input, def)
	}

	if err != nil {
		return nil, 0, err
	}

	depth := f.depth
	if depth == 0 {
		depth = nested.Depth(doc)
		if depth == 0 {
			return nil, 0, errors.New("document is not a sequence")
		}

		a.logger.Debug("Inferred depth", zap.Int("depth", depth))
	}

	if depth < 0 {
		return nil, 0, fmt.Errorf("--depth must not be negative, got %d", depth)
	}

	return doc, depth, nil
}
