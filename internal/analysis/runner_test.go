package analysis

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"shenanigigs/jobstats/internal/charts"
	"shenanigigs/jobstats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	logger := zaptest.NewLogger(t)
	return NewRunner(&out, charts.NewRenderer(dir, logger), logger, "jobs_data.csv"), &out, dir
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func TestRunFullReport(t *testing.T) {
	r, out, dir := newTestRunner(t)
	table := models.Table{
		{Title: "Senior Software Engineer", Company: "Stripe", Location: "Remote", Salary: "$90k - $120k"},
		{Title: "Software Engineer", Company: "Zoom", Location: "New York, NY", Salary: "$100k - $130k"},
		{Title: "Data Analyst", Company: "Stripe", Location: "Remote", Salary: "N/A"},
	}

	report, err := r.Run(context.Background(), table)
	require.NoError(t, err)

	assert.Equal(t, SalaryStats{Count: 2, Mean: 110, Median: 110, Min: 105, Max: 115}, report.Salary)
	assert.Equal(t, []Ranked{{"Remote", 2}, {"New York, NY", 1}}, report.Locations)
	assert.Equal(t, []Ranked{{"Stripe", 2}, {"Zoom", 1}}, report.Companies)
	assert.Equal(t, Ranked{"software", 2}, report.Keywords[0])
	assert.Equal(t, Summary{TotalJobs: 3, UniqueCompanies: 2, UniqueLocations: 2, JobsWithSalary: 2}, report.Summary)
	assert.Empty(t, report.Skipped)

	text := out.String()
	for _, want := range []string{
		"SALARY ANALYSIS",
		"Jobs with salary info: 2",
		"Average salary: $110",
		"Median salary: $110",
		"Min salary: $105",
		"Max salary: $115",
		"LOCATION ANALYSIS",
		"Top 10 locations:",
		"Remote        2",
		"New York, NY  1",
		"COMPANY ANALYSIS",
		"Top 10 hiring companies:",
		"Stripe  2",
		"JOB TITLE ANALYSIS",
		"Most common words in job titles:",
		"software: 2",
		"SUMMARY REPORT",
		"Total jobs scraped: 3",
		"Unique companies: 2",
		"Unique locations: 2",
		"Data saved in: jobs_data.csv",
	} {
		assert.Contains(t, text, want)
	}

	for _, name := range []string{
		charts.SalaryDistributionFile,
		charts.TopLocationsFile,
		charts.TopCompaniesFile,
		charts.TitleKeywordsFile,
	} {
		assert.True(t, exists(dir, name), name)
	}
}

func TestRunWithoutSalaries(t *testing.T) {
	r, out, dir := newTestRunner(t)
	table := models.Table{
		{Title: "QA Engineer", Company: "Stripe", Location: "Remote", Salary: "N/A"},
		{Title: "Cloud Engineer", Company: "Zoom", Location: "Austin, TX", Salary: "N/A"},
	}

	report, err := r.Run(context.Background(), table)
	require.NoError(t, err)

	assert.Equal(t, []string{"salary"}, report.Skipped)
	assert.Contains(t, out.String(), "No salary information available")
	assert.Contains(t, out.String(), "Jobs with salary info: 0")
	assert.False(t, exists(dir, charts.SalaryDistributionFile))

	assert.True(t, exists(dir, charts.TopLocationsFile))
	assert.True(t, exists(dir, charts.TopCompaniesFile))
	assert.True(t, exists(dir, charts.TitleKeywordsFile))
}

func TestRunWithoutTitleKeywords(t *testing.T) {
	r, out, dir := newTestRunner(t)
	table := models.Table{
		{Title: "QA", Company: "Stripe", Location: "Remote", Salary: "$100k"},
	}

	report, err := r.Run(context.Background(), table)
	require.NoError(t, err)

	assert.Equal(t, []string{"titles"}, report.Skipped)
	assert.Contains(t, out.String(), "No title keywords found")
	assert.False(t, exists(dir, charts.TitleKeywordsFile))
	assert.True(t, exists(dir, charts.SalaryDistributionFile))
}

func TestRunEmptyTable(t *testing.T) {
	r, out, dir := newTestRunner(t)

	report, err := r.Run(context.Background(), models.Table{})
	require.NoError(t, err)

	assert.Equal(t, []string{"salary", "locations", "companies", "titles"}, report.Skipped)
	assert.Contains(t, out.String(), "Total jobs scraped: 0")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunReportsChartFailures(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	var out bytes.Buffer
	logger := zaptest.NewLogger(t)
	r := NewRunner(&out, charts.NewRenderer(file, logger), logger, "jobs_data.csv")

	report, err := r.Run(context.Background(), models.Table{
		{Title: "Software Engineer", Company: "Stripe", Location: "Remote", Salary: "$100k"},
	})
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Summary.TotalJobs)
	assert.Contains(t, out.String(), "SUMMARY REPORT")
}
