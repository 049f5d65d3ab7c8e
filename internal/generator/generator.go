package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"shenanigigs/jobstats/internal/errors"
	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/telemetry"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Generator struct {
	vocab  Vocabulary
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
	tracer trace.Tracer
}

type Option func(*Generator)

// WithRand replaces the default time-seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithClock replaces time.Now as the source of posted and scraped dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(vocab Vocabulary, logger *zap.Logger, opts ...Option) (*Generator, error) {
	if err := vocab.validate(); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	g := &Generator{
		vocab:  vocab,
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
		now:    time.Now,
		logger: logger,
		tracer: telemetry.GetTracer("shenanigigs/jobstats/generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate draws n independent listings with replacement.
func (g *Generator) Generate(ctx context.Context, n int) ([]models.JobRecord, error) {
	_, span := g.tracer.Start(ctx, "Generator.Generate")
	defer span.End()
	span.SetAttributes(telemetry.Int("jobs.requested", n))

	if n < 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("job count must not be negative, got %d", n), nil)
	}

	g.logger.Info("Generating job listings", zap.Int("count", n))

	jobs := make([]models.JobRecord, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, g.record())
	}

	g.logger.Info("Generated job listings successfully", zap.Int("count", len(jobs)))
	return jobs, nil
}

func (g *Generator) record() models.JobRecord {
	now := g.now()
	daysAgo := g.rng.IntN(g.vocab.MaxPostedAgeDays + 1)

	return models.JobRecord{
		Title:       pick(g.rng, g.vocab.Titles),
		Company:     pick(g.rng, g.vocab.Companies),
		Location:    pick(g.rng, g.vocab.Locations),
		Salary:      g.salary(),
		Skills:      strings.Join(pick(g.rng, g.vocab.SkillGroups), ", "),
		PostedDate:  now.AddDate(0, 0, -daysAgo).Format(models.PostedDateLayout),
		ScrapedDate: now.Format(models.ScrapedDateLayout),
	}
}

func (g *Generator) salary() string {
	base := pick(g.rng, g.vocab.SalaryBases)
	return FormatSalary(base, g.vocab.SalarySpread)
}

// FormatSalary renders a salary range in thousands, e.g. "$90k - $120k".
func FormatSalary(base, spread int) string {
	return fmt.Sprintf("$%dk - $%dk", base, base+spread)
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.IntN(len(pool))]
}

func (v Vocabulary) validate() error {
	switch {
	case len(v.Titles) == 0:
		return errors.InvalidInput("vocabulary has no titles", nil)
	case len(v.Companies) == 0:
		return errors.InvalidInput("vocabulary has no companies", nil)
	case len(v.Locations) == 0:
		return errors.InvalidInput("vocabulary has no locations", nil)
	case len(v.SkillGroups) == 0:
		return errors.InvalidInput("vocabulary has no skill groups", nil)
	case len(v.SalaryBases) == 0:
		return errors.InvalidInput("vocabulary has no salary bases", nil)
	case v.MaxPostedAgeDays < 0:
		return errors.InvalidInput("max posted age must not be negative", nil)
	}
	return nil
}
