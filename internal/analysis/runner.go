package analysis

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"shenanigigs/jobstats/internal/charts"
	"shenanigigs/jobstats/internal/errors"
	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/telemetry"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	SalaryBins = 20

	rule = "=================================================="
)

// Report is what a run computed. Sections that had nothing to report are
// left at their zero value and listed in Skipped.
type Report struct {
	Salary    SalaryStats
	Locations []Ranked
	Companies []Ranked
	Keywords  []Ranked
	Summary   Summary
	Skipped   []string
}

type Runner struct {
	out      io.Writer
	renderer *charts.Renderer
	logger   *zap.Logger
	tracer   trace.Tracer
	dataFile string
}

func NewRunner(out io.Writer, renderer *charts.Renderer, logger *zap.Logger, dataFile string) *Runner {
	return &Runner{
		out:      out,
		renderer: renderer,
		logger:   logger,
		tracer:   telemetry.GetTracer("shenanigigs/jobstats/analysis"),
		dataFile: dataFile,
	}
}

// Run prints every section and renders its chart. A section with no
// qualifying data prints a notice and skips its chart; the others still run.
// Only chart write failures are returned.
func (r *Runner) Run(ctx context.Context, table models.Table) (*Report, error) {
	ctx, span := r.tracer.Start(ctx, "Runner.Run")
	defer span.End()
	span.SetAttributes(telemetry.Int("jobs.count", len(table)))

	report := &Report{}
	sections := []struct {
		name string
		run  func(context.Context, models.Table, *Report) error
	}{
		{"salary", r.salarySection},
		{"locations", r.locationSection},
		{"companies", r.companySection},
		{"titles", r.titleSection},
	}

	var failed []string
	for _, s := range sections {
		err := s.run(ctx, table, report)
		switch {
		case err == nil:
		case errors.IsType(err, errors.ErrTypeDegenerateData):
			report.Skipped = append(report.Skipped, s.name)
			r.logger.Info("Skipped analysis section", zap.String("section", s.name), zap.Error(err))
		default:
			span.RecordError(err)
			failed = append(failed, s.name)
			r.logger.Error("Analysis section failed", zap.String("section", s.name), zap.Error(err))
		}
	}

	report.Summary = r.summarySection(table)

	if len(failed) > 0 {
		return report, errors.WriteFailure(fmt.Sprintf("sections failed: %s", strings.Join(failed, ", ")), nil)
	}
	return report, nil
}

func (r *Runner) salarySection(ctx context.Context, table models.Table, report *Report) error {
	_, span := r.tracer.Start(ctx, "Runner.salarySection")
	defer span.End()

	r.header("SALARY ANALYSIS")

	values := SalaryValues(table)
	stats, err := ComputeSalaryStats(values)
	if err != nil {
		r.printf("\nNo salary information available in the data.\n")
		return err
	}
	report.Salary = stats
	span.SetAttributes(
		telemetry.Int("salary.count", stats.Count),
		telemetry.Float64("salary.mean", stats.Mean),
	)

	r.printf("\nJobs with salary info: %d\n", stats.Count)
	r.printf("Average salary: %s\n", FormatCurrency(stats.Mean))
	r.printf("Median salary: %s\n", FormatCurrency(stats.Median))
	r.printf("Min salary: %s\n", FormatCurrency(stats.Min))
	r.printf("Max salary: %s\n", FormatCurrency(stats.Max))

	return r.renderer.Histogram(charts.SalaryDistributionFile, values, SalaryBins, charts.Labels{
		Title:  "Salary Distribution",
		XLabel: "Salary ($)",
		YLabel: "Frequency",
	}, charts.SkyBlue)
}

func (r *Runner) locationSection(ctx context.Context, table models.Table, report *Report) error {
	_, span := r.tracer.Start(ctx, "Runner.locationSection")
	defer span.End()

	r.header("LOCATION ANALYSIS")
	report.Locations = TopLocations(table, TopGroups)
	span.SetAttributes(telemetry.Int("locations.ranked", len(report.Locations)))

	return r.rankedSection("Top 10 locations:", "No location information available in the data.",
		report.Locations, charts.TopLocationsFile, charts.Labels{
			Title:  "Top 10 Job Locations",
			XLabel: "Number of Jobs",
			YLabel: "Location",
		}, charts.Coral)
}

func (r *Runner) companySection(ctx context.Context, table models.Table, report *Report) error {
	_, span := r.tracer.Start(ctx, "Runner.companySection")
	defer span.End()

	r.header("COMPANY ANALYSIS")
	report.Companies = TopCompanies(table, TopGroups)
	span.SetAttributes(telemetry.Int("companies.ranked", len(report.Companies)))

	return r.rankedSection("Top 10 hiring companies:", "No company information available in the data.",
		report.Companies, charts.TopCompaniesFile, charts.Labels{
			Title:  "Top 10 Hiring Companies",
			XLabel: "Number of Job Postings",
			YLabel: "Company",
		}, charts.LightGreen)
}

func (r *Runner) titleSection(ctx context.Context, table models.Table, report *Report) error {
	_, span := r.tracer.Start(ctx, "Runner.titleSection")
	defer span.End()

	r.header("JOB TITLE ANALYSIS")
	report.Keywords = TopTitleKeywords(table, TopKeywords)
	span.SetAttributes(telemetry.Int("keywords.ranked", len(report.Keywords)))

	if len(report.Keywords) == 0 {
		r.printf("\nNo title keywords found in the data.\n")
		return errors.DegenerateData("no title keywords")
	}

	r.printf("\nMost common words in job titles:\n")
	for _, kw := range report.Keywords {
		r.printf("%s: %d\n", kw.Key, kw.Count)
	}

	return r.renderer.HorizontalBars(charts.TitleKeywordsFile, bars(report.Keywords), charts.Labels{
		Title:  "Most Common Words in Job Titles",
		XLabel: "Frequency",
		YLabel: "Word",
	}, charts.MediumPurple)
}

func (r *Runner) rankedSection(heading, empty string, ranked []Ranked, file string, labels charts.Labels, fill color.Color) error {
	if len(ranked) == 0 {
		r.printf("\n%s\n", empty)
		return errors.DegenerateData(strings.ToLower(strings.TrimSuffix(empty, ".")))
	}

	r.printf("\n%s\n", heading)
	width := 0
	for _, g := range ranked {
		width = max(width, utf8.RuneCountInString(g.Key))
	}
	for _, g := range ranked {
		r.printf("%s%s  %d\n", g.Key, strings.Repeat(" ", width-utf8.RuneCountInString(g.Key)), g.Count)
	}

	return r.renderer.HorizontalBars(file, bars(ranked), labels, fill)
}

func (r *Runner) summarySection(table models.Table) Summary {
	s := Summarize(table)

	r.header("SUMMARY REPORT")
	r.printf("\nTotal jobs scraped: %d\n", s.TotalJobs)
	r.printf("Unique companies: %d\n", s.UniqueCompanies)
	r.printf("Unique locations: %d\n", s.UniqueLocations)
	r.printf("Jobs with salary info: %d\n", s.JobsWithSalary)
	r.printf("\nData saved in: %s\n", r.dataFile)
	r.printf("Visualizations saved as PNG files\n")

	return s
}

func (r *Runner) header(title string) {
	r.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func bars(ranked []Ranked) []charts.Bar {
	out := make([]charts.Bar, len(ranked))
	for i, g := range ranked {
		out[i] = charts.Bar{Label: g.Key, Value: float64(g.Count)}
	}
	return out
}
