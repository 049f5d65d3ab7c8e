package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"shenanigigs/jobstats/internal/config"
	"shenanigigs/jobstats/internal/dataset"
	"shenanigigs/jobstats/internal/generator"
	"shenanigigs/jobstats/internal/logging"
	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/telemetry"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const previewRows = 10

var banner = strings.Repeat("=", 60)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.GeneratorLogFile})
}

func newGenerator(logger *zap.Logger) (*generator.Generator, error) {
	return generator.NewGenerator(generator.DefaultVocabulary(), logger)
}

func registerHooks(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, cfg.ServiceNamePrefix+"-generator", cfg.OTELCollectorURL)
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
		cfg   *config.Config
		gen   *generator.Generator
		store *dataset.Store
	)

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newGenerator,
			dataset.NewStore,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))}
		}),
		fx.Invoke(registerHooks),
		fx.Populate(&cfg, &gen, &store),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatal(err)
	}

	code := run(ctx, os.Stdin, os.Stdout, cfg, gen, store)

	if err := app.Stop(ctx); err != nil {
		log.Print(err)
	}
	os.Exit(code)
}

func run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, gen *generator.Generator, store *dataset.Store) int {
	fmt.Fprintf(out, "\n%s\nJOB DATA GENERATOR\n%s\n", banner, banner)
	fmt.Fprintln(out, "\nThis generates realistic job data for analysis and demonstration.")

	count := generator.PromptCount(in, out, cfg.DefaultJobCount)
	fmt.Fprintf(out, "\nGenerating %d realistic job listings...\n\n", count)

	jobs, err := gen.Generate(ctx, count)
	if err != nil {
		fmt.Fprintf(out, "❌ Failed to generate jobs: %v\n", err)
		return 1
	}

	if err := store.Write(ctx, cfg.DataFile, jobs); err != nil {
		fmt.Fprintf(out, "❌ Failed to save jobs to %s: %v\n", cfg.DataFile, err)
		return 1
	}
	fmt.Fprintf(out, "\n✅ Saved %d jobs to %s\n", len(jobs), cfg.DataFile)

	fmt.Fprintf(out, "\n📊 Preview of generated data:\n%s\n", banner)
	writePreview(out, jobs, previewRows)

	fmt.Fprintf(out, "\n✅ Total jobs generated: %d\n", len(jobs))
	fmt.Fprintln(out, "\n💡 Next step: Run the analyzer to analyze this data!")
	return 0
}

func writePreview(out io.Writer, jobs []models.JobRecord, limit int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\ttitle\tcompany\tlocation\tsalary")
	for i, job := range jobs {
		if i == limit {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, job.Title, job.Company, job.Location, job.Salary)
	}
	_ = w.Flush()
}
