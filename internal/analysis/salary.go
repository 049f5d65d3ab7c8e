package analysis

import (
	"slices"

	"shenanigigs/jobstats/internal/errors"
	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/parser"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SalaryStats summarizes SalaryNumeric values, in thousands of dollars.
type SalaryStats struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// SalaryValues returns SalaryNumeric for every record that has one, in
// table order. Values are derived per call and never written back.
func SalaryValues(table models.Table) []float64 {
	values := make([]float64, 0, len(table))
	for _, job := range table {
		if v, ok := parser.ParseSalary(job.Salary); ok {
			values = append(values, v)
		}
	}
	return values
}

func ComputeSalaryStats(values []float64) (SalaryStats, error) {
	if len(values) == 0 {
		return SalaryStats{}, errors.DegenerateData("no salary information")
	}

	return SalaryStats{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Median: median(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}, nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
