package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"map2d-testgen/internal/gen"
	"map2d-testgen/internal/plan"
	"map2d-testgen/primitive"
)

// options holds the values bound to the command line flags.
type options struct {
	verbose   bool
	output    string
	outputDir string
	dumpPlan  bool
	target    string
	name      string
	title     string
	subtitle  string

	sizes     []int
	memTypes  []string
	xTypes    []string
	yTypes    []string
	sweepFrom int
	sweepTo   int
	sweepStep int

	logger *zap.Logger
}

func newOptions() *options {
	cfg := plan.DefaultConfig()
	gcfg := gen.DefaultGeneratorConfig()

	return &options{
		target:    string(gcfg.Target),
		name:      gcfg.Name,
		title:     gcfg.Title,
		subtitle:  gcfg.Subtitle,
		sizes:     cfg.Sizes,
		memTypes:  primitive.Tokens(cfg.MemoryTypes),
		xTypes:    primitive.Tokens(cfg.XTypes),
		yTypes:    primitive.Tokens(cfg.YTypes),
		sweepFrom: cfg.Sweep.From,
		sweepTo:   cfg.Sweep.To,
		sweepStep: cfg.Sweep.Step,
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(newOptions())
}

func newRootCmdWith(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map2d-testgen",
		Short: "Generate a Map2D test harness",
		Long: `Generates the source of a test harness for the Map2D lookup tables.

The harness declares breakpoint arrays in program memory, instantiates one
Map2D table for every combination of X type, Y type and size, then sweeps an
index over every table and prints the interpolated values.

Run without flags to print the signed int/float harness to stdout:

  map2d-testgen > testSigned2D.ino`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			o.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&o.output, "output", "o", "", "Write the harness to this file instead of stdout")
	flags.StringVar(&o.outputDir, "output-dir", "", "Write the harness into this directory, named after --name")
	flags.BoolVar(&o.dumpPlan, "dump-plan", false, "Write the planned records as YAML instead of the harness")
	flags.StringVar(&o.target, "target", o.target, fmt.Sprintf("Harness dialect, one of %v", gen.Targets))
	flags.StringVar(&o.name, "name", o.name, "Harness base name")
	flags.StringVar(&o.title, "title", o.title, "Banner title")
	flags.StringVar(&o.subtitle, "subtitle", o.subtitle, "Banner subtitle")
	flags.IntSliceVar(&o.sizes, "sizes", o.sizes, "Table sizes (breakpoint counts); each must divide 256")
	flags.StringSliceVar(&o.memTypes, "mem-types", o.memTypes, "Storage types of the breakpoint arrays")
	flags.StringSliceVar(&o.xTypes, "x-types", o.xTypes, "Table input types")
	flags.StringSliceVar(&o.yTypes, "y-types", o.yTypes, "Table output types")
	flags.IntVar(&o.sweepFrom, "sweep-from", o.sweepFrom, "First sampled index")
	flags.IntVar(&o.sweepTo, "sweep-to", o.sweepTo, "Last sampled index (inclusive)")
	flags.IntVar(&o.sweepStep, "sweep-step", o.sweepStep, "Index increment")

	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")

	return cmd
}

func (o *options) planConfig() (plan.Config, error) {
	cfg := plan.Config{
		Sizes: o.sizes,
		Sweep: plan.Sweep{From: o.sweepFrom, To: o.sweepTo, Step: o.sweepStep},
	}

	for _, list := range []struct {
		flag   string
		tokens []string
		dst    *[]primitive.KindEnum
	}{
		{"mem-types", o.memTypes, &cfg.MemoryTypes},
		{"x-types", o.xTypes, &cfg.XTypes},
		{"y-types", o.yTypes, &cfg.YTypes},
	} {
		kinds, err := primitive.ParseKinds(list.tokens)
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", list.flag, err)
		}

		*list.dst = kinds
	}

	return cfg, nil
}

func (o *options) generatorConfig() (gen.GeneratorConfig, error) {
	target, err := gen.ParseTarget(o.target)
	if err != nil {
		return gen.GeneratorConfig{}, fmt.Errorf("--target: %w", err)
	}

	return gen.GeneratorConfig{
		Target:   target,
		Name:     o.name,
		Title:    o.title,
		Subtitle: o.subtitle,
	}, nil
}

func (o *options) run(stdout io.Writer) error {
	cfg, err := o.planConfig()
	if err != nil {
		return err
	}

	gcfg, err := o.generatorConfig()
	if err != nil {
		return err
	}

	p, err := plan.Build(cfg)

	for _, w := range p.Diagnostics.Warnings {
		o.logger.Warn("configuration warning",
			zap.String("code", w.Code), zap.String("subject", w.Subject), zap.String("item", w.Item))
	}

	if err != nil {
		for _, e := range p.Diagnostics.Errors {
			o.logger.Error("configuration error",
				zap.String("code", e.Code), zap.String("subject", e.Subject), zap.String("item", e.Item),
				zap.String("message", e.Message))
		}

		o.logger.Error("configuration rejected", zap.Strings("codes", p.Diagnostics.Codes()))

		return err
	}

	o.logger.Debug("plan built",
		zap.Ints("sizes", p.Config.Sizes),
		zap.Int("arrays", len(p.Arrays)),
		zap.Int("instances", len(p.Instances)),
		zap.Int("samples", len(p.Samples)),
		zap.Int("int_prints", len(p.IntPrints)),
		zap.Int("float_prints", len(p.FloatPrints)))

	var file *gen.GeneratedFile
	if o.dumpPlan {
		data, err := plan.ExportYAML(p)
		if err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}

		file = &gen.GeneratedFile{Filename: gcfg.Name + ".plan.yaml", Content: data}
	} else {
		file, err = gen.NewGenerator(gcfg).Generate(p)
		if err != nil {
			return fmt.Errorf("generating harness: %w", err)
		}
	}

	destination := "stdout"

	switch {
	case o.outputDir != "":
		destination = filepath.Join(o.outputDir, file.Filename)
		err = gen.WriteFiles([]gen.GeneratedFile{*file}, o.outputDir)
	case o.output != "" && o.output != "-":
		destination = o.output
		err = gen.WriteFile(o.output, file.Content)
	default:
		_, err = stdout.Write(file.Content)
	}

	if err != nil {
		return err
	}

	o.logger.Info("harness generated",
		zap.String("target", string(gcfg.Target)),
		zap.Bool("plan", o.dumpPlan),
		zap.Int("instances", len(p.Instances)),
		zap.Int("bytes", len(file.Content)),
		zap.String("destination", destination))

	return nil
}
