package analysis

import (
	"slices"

	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/parser"
)

const (
	TopGroups   = 10
	TopKeywords = 15
)

type Ranked struct {
	Key   string
	Count int
}

// TopN counts keys and returns the n most frequent, highest first. Equal
// counts keep the order in which keys were first seen. Empty keys are not
// counted. n <= 0 returns every key.
func TopN(keys []string, n int) []Ranked {
	positions := make(map[string]int)
	var counts []Ranked

	for _, key := range keys {
		if key == "" {
			continue
		}
		if i, ok := positions[key]; ok {
			counts[i].Count++
			continue
		}
		positions[key] = len(counts)
		counts = append(counts, Ranked{Key: key, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b Ranked) int {
		return b.Count - a.Count
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func TopLocations(table models.Table, n int) []Ranked {
	return TopN(column(table, func(j models.JobRecord) string { return j.Location }), n)
}

func TopCompanies(table models.Table, n int) []Ranked {
	return TopN(column(table, func(j models.JobRecord) string { return j.Company }), n)
}

func TopTitleKeywords(table models.Table, n int) []Ranked {
	return TopN(parser.TitleKeywords(column(table, func(j models.JobRecord) string { return j.Title })), n)
}

func column(table models.Table, field func(models.JobRecord) string) []string {
	values := make([]string, len(table))
	for i, job := range table {
		values[i] = field(job)
	}
	return values
}
