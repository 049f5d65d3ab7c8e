package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"shenanigigs/jobstats/internal/analysis"
	"shenanigigs/jobstats/internal/charts"
	"shenanigigs/jobstats/internal/config"
	"shenanigigs/jobstats/internal/dataset"
	"shenanigigs/jobstats/internal/errors"
	"shenanigigs/jobstats/internal/logging"
	"shenanigigs/jobstats/internal/telemetry"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.AnalyzerLogFile})
}

func newRenderer(cfg *config.Config, logger *zap.Logger) *charts.Renderer {
	return charts.NewRenderer(cfg.ChartDir, logger)
}

func newRunner(cfg *config.Config, renderer *charts.Renderer, logger *zap.Logger) *analysis.Runner {
	return analysis.NewRunner(os.Stdout, renderer, logger, cfg.DataFile)
}

func registerHooks(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, cfg.ServiceNamePrefix+"-analyzer", cfg.OTELCollectorURL)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown != nil {
				if err := shutdown(ctx); err != nil {
					logger.Warn("failed to shut down tracing", zap.Error(err))
				}
			}
			_ = logger.Sync()
			return nil
		},
	})
}

func main() {
	var (
		cfg    *config.Config
		store  *dataset.Store
		runner *analysis.Runner
	)

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newRenderer,
			newRunner,
			dataset.NewStore,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))}
		}),
		fx.Invoke(registerHooks),
		fx.Populate(&cfg, &store, &runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatal(err)
	}

	code := run(ctx, os.Stdout, cfg, store, runner)

	if err := app.Stop(ctx); err != nil {
		log.Print(err)
	}
	os.Exit(code)
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, store *dataset.Store, runner *analysis.Runner) int {
	table, err := store.Load(ctx, cfg.DataFile)
	if err != nil {
		switch {
		case errors.IsType(err, errors.ErrTypeMissingInput):
			fmt.Fprintf(out, "❌ %s not found. Run the generator first!\n", cfg.DataFile)
		default:
			fmt.Fprintf(out, "❌ Could not load data from %s: %v\n", cfg.DataFile, err)
		}
		fmt.Fprintln(out, "❌ Could not load data. Make sure to run the generator first!")
		return 1
	}

	if _, err := runner.Run(ctx, table); err != nil {
		fmt.Fprintf(out, "\n❌ Analysis finished with errors: %v\n", err)
		return 1
	}

	fmt.Fprintln(out, "\n✅ Analysis complete! Check the PNG files for visualizations.")
	return 0
}
