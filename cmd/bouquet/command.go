package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/viant/bouquet"
	"github.com/viant/bouquet/internal/metrics"
	"github.com/viant/bouquet/progress"
	"github.com/viant/bouquet/tracing"
	"go.uber.org/zap"
)

const version = "0.1.0"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bouquet",
		Short:        "Plan bouquets from flower and design documents",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCommand(viper.New()))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan every input document and write out.<name> bouquet lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringP("input", "i", "", "input location (local path or afs URL)")
	flags.StringP("output", "o", "", "output location (local path or afs URL)")
	flags.String("pattern", "", "input file name pattern (default *.txt)")
	flags.Int("max-sweeps", 0, "stop planning after this many sweeps, 0 for no limit")
	flags.StringP("config", "c", "", "YAML or JSON config file")
	flags.Bool("report", false, "print session reports as YAML")
	flags.Bool("diff", false, "record changes against existing outputs in session reports")
	flags.String("trace-file", "", "write OpenTelemetry spans to this file")
	flags.String("metrics-file", "", "write prometheus metrics to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	bindFlags(v, flags)
	return cmd
}

// bindFlags maps command line flags onto config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	keys := map[string]string{
		"input":        "input.url",
		"output":       "output.url",
		"pattern":      "input.pattern",
		"max-sweeps":   "planner.maxSweeps",
		"config":       "config",
		"report":       "report",
		"diff":         "output.diff",
		"trace-file":   "traceFile",
		"metrics-file": "metricsFile",
		"log-level":    "logLevel",
	}
	for name, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// loadConfig merges defaults, the config file, BOUQUET_* variables and flags.
func loadConfig(v *viper.Viper) (*bouquet.Config, error) {
	defaults := bouquet.DefaultConfig()
	v.SetDefault("input.url", defaults.Input.URL)
	v.SetDefault("input.pattern", defaults.Input.Pattern)
	v.SetDefault("input.recursive", defaults.Input.Recursive)
	v.SetDefault("output.url", defaults.Output.URL)
	v.SetDefault("output.prefix", defaults.Output.Prefix)
	v.SetDefault("output.reverse", defaults.Output.Reverse)
	v.SetDefault("output.diff", defaults.Output.Diff)
	v.SetDefault("planner.maxSweeps", defaults.Planner.MaxSweeps)

	v.SetEnvPrefix("BOUQUET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", file, err)
		}
	}
	config := &bouquet.Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if config.Input.Pattern == "" {
		config.Input.Pattern = defaults.Input.Pattern
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newLogger(level string) (logr.Logger, func(), error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel
	zapLog, err := zapConfig.Build()
	if err != nil {
		return logr.Discard(), nil, err
	}
	return zapr.NewLogger(zapLog), func() { _ = zapLog.Sync() }, nil
}

func run(ctx context.Context, v *viper.Viper, out io.Writer) (err error) {
	config, err := loadConfig(v)
	if err != nil {
		return err
	}
	logger, flush, err := newLogger(v.GetString("logLevel"))
	if err != nil {
		return err
	}
	defer flush()

	if traceFile := v.GetString("traceFile"); traceFile != "" {
		provider, err := tracing.Init("bouquet", version, traceFile)
		if err != nil {
			return err
		}
		defer func() { _ = provider.Shutdown(context.Background()) }()
	}

	registry := prometheus.NewRegistry()
	srv := bouquet.New(
		bouquet.WithConfig(config),
		bouquet.WithLogger(logger),
		bouquet.WithMetrics(metrics.New(registry)),
		bouquet.WithProgressListener(func(p progress.Progress) {
			logger.V(1).Info("progress", "source", p.Source, "sweeps", p.Sweeps, "bouquets", p.Bouquets)
		}),
	)
	reports, runErr := srv.Runtime().Run(ctx)

	if metricsFile := v.GetString("metricsFile"); metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
			logger.Error(err, "failed to write metrics", "file", metricsFile)
		}
	}
	if v.GetBool("report") {
		for _, report := range reports {
			data, err := report.YAML()
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(out, "---\n%s", data); err != nil {
				return err
			}
		}
	}
	return runErr
}
