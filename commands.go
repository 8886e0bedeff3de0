package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"figcentroid/internal/config"
	"figcentroid/internal/figure"
	"figcentroid/internal/report"
	"figcentroid/internal/version"
)

// cli carries state shared by all subcommands for one invocation.
type cli struct {
	verbose    bool
	configPath string
	precision  int
	styled     bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "figcentroid",
		Short: "Centroid of composite plane figures",
		Long: `figcentroid computes the centroid of a figure built from rectangles,
circles, semicircles and triangles. Shapes marked subtract are holes or
cut-outs and contribute negative area.

Figures are described in YAML (or JSON) files:

  name: plate
  shapes:
    - {name: body, kind: rectangle, width: 80, height: 80}
    - {name: hole, kind: circle, radius: 25, subtract: true}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.IntVar(&c.precision, "precision", report.DefaultPrecision, "decimals printed in the report")
	flags.BoolVar(&c.styled, "styled", false, "style the report for a terminal")

	root.AddCommand(c.calcCmd(), c.demoCmd(), versionCmd())
	return root
}

// setup loads config and builds the logger. Flags set on the command line
// override config values.
func (c *cli) setup(cmd *cobra.Command) error {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = c.precision
	}
	if flags.Changed("styled") {
		cfg.Styled = c.styled
	}
	if c.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	c.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (c *cli) options() report.Options {
	return report.Options{Precision: c.cfg.Precision, Styled: c.cfg.Styled}
}

// summarize builds the figure and prints its report.
func (c *cli) summarize(cmd *cobra.Command, f *figure.File) error {
	calc, err := f.Build(c.logger)
	if err != nil {
		return err
	}
	c.logger.Debug("figure built", zap.String("figure", f.Name), zap.Int("elements", calc.Len()))

	out, err := report.Summary(calc, c.options())
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (c *cli) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <figure-file>",
		Short: "Print the centroid summary for a figure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := figure.Load(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("figure loaded", zap.String("path", args[0]), zap.Int("shapes", len(f.Shapes)))
			return c.summarize(cmd, f)
		},
	}
}

func (c *cli) demoCmd() *cobra.Command {
	var savePath string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the summary for the built-in example figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := figure.Demo()
			if savePath != "" {
				if err := f.Save(savePath); err != nil {
					return fmt.Errorf("save demo figure: %w", err)
				}
				c.logger.Info("demo figure saved", zap.String("path", savePath))
			}
			return c.summarize(cmd, f)
		},
	}
	cmd.Flags().StringVar(&savePath, "save", "", "also write the demo figure to this file")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
