// Package main provides the CLI entrypoint for dimension-mapper.
//
// dimension-mapper applies numeric transforms to nested JSON or YAML arrays
// of a known depth:
//   - map: transform every leaf, keeping the document's shape
//   - check: report where a document deviates from a declared depth
//   - shape: print the lengths at every level
//   - transforms: list the registered transforms
//   - config: write or print the configuration file
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dimension-mapper/internal/binder"
	"dimension-mapper/internal/config"
	"dimension-mapper/internal/deprecation"
	"dimension-mapper/internal/invariant"
	"dimension-mapper/internal/transform"
)

// app carries the state shared by every subcommand.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg       *config.Config
	logger    *zap.Logger
	registry  *transform.Registry
	namespace *binder.Namespace
	warner    *deprecation.Warner
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dimension-mapper",
		Short: "Transform nested numeric arrays while keeping their shape",
		Long: `dimension-mapper reads a JSON or YAML document made of nested arrays,
applies a named transform to every leaf and writes a document of the same shape.

The nesting depth is given with --depth or inferred from the first element
of every level.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newMapCmd(a),
		newCheckCmd(a),
		newShapeCmd(a),
		newTransformsCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads the config and builds the logger, the transform registry and
// the namespace the transforms are bound into.
func (a *app) setup() error {
	a.cfg = config.Default()

	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		a.cfg = cfg
	}

	if a.logger == nil {
		logger, err := a.buildLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		a.logger = logger
	}

	invariant.Enable(*a.cfg.Assertions)
	a.warner = deprecation.NewWarner(a.logger, *a.cfg.DeprecationWarnings)

	registry, errs := transform.BuildRegistry(a.cfg.Transforms)
	if len(errs) > 0 {
		return fmt.Errorf("invalid transforms in config: %w", errors.Join(errs...))
	}

	a.registry = registry
	a.namespace = binder.NewNamespace()

	for _, t := range registry.All() {
		if err := a.namespace.Bind(transformPath(t.Def.Name), t); err != nil {
			return err
		}
	}

	a.logger.Debug("Configuration loaded",
		zap.String("config", a.configPath),
		zap.Bool("assertions", invariant.Enabled()),
		zap.Strings("bound", a.namespace.Paths()))

	return nil
}

func (a *app) buildLogger() (*zap.Logger, error) {
	level, err := a.cfg.Level()
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if a.verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return zapConfig.Build()
}

func transformPath(name string) string {
	return "transforms." + name
}
