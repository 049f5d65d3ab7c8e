package analysis

import "shenanigigs/jobstats/internal/models"

type Summary struct {
	TotalJobs       int
	UniqueCompanies int
	UniqueLocations int
	// JobsWithSalary counts raw salary cells other than "N/A". It is not
	// the number of SalaryNumeric values.
	JobsWithSalary int
}

func Summarize(table models.Table) Summary {
	companies := make(map[string]struct{})
	locations := make(map[string]struct{})
	s := Summary{TotalJobs: len(table)}

	for _, job := range table {
		if job.Company != "" {
			companies[job.Company] = struct{}{}
		}
		if job.Location != "" {
			locations[job.Location] = struct{}{}
		}
		if job.Salary != models.NoSalary {
			s.JobsWithSalary++
		}
	}

	s.UniqueCompanies = len(companies)
	s.UniqueLocations = len(locations)
	return s
}
