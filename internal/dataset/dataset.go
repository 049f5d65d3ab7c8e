package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"shenanigigs/jobstats/internal/errors"
	"shenanigigs/jobstats/internal/models"
	"shenanigigs/jobstats/internal/telemetry"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Store reads and writes the handoff file shared by the generator and the
// analyzer.
type Store struct {
	logger *zap.Logger
	tracer trace.Tracer
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger: logger,
		tracer: telemetry.GetTracer("shenanigigs/jobstats/dataset"),
	}
}

// Write persists jobs with a header row. The file appears only once it has
// been written completely.
func (s *Store) Write(ctx context.Context, path string, jobs []models.JobRecord) error {
	_, span := s.tracer.Start(ctx, "Store.Write")
	defer span.End()
	span.SetAttributes(
		telemetry.String("file.path", path),
		telemetry.Int("jobs.count", len(jobs)),
	)

	if err := s.write(path, jobs); err != nil {
		span.RecordError(err)
		s.logger.Error("Error saving to CSV", zap.String("file", path), zap.Error(err))
		return errors.WriteFailure(fmt.Sprintf("saving %s", path), err)
	}

	s.logger.Info("Data saved", zap.String("file", path), zap.Int("rows", len(jobs)))
	return nil
}

func (s *Store) write(path string, jobs []models.JobRecord) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := encode(tmp, jobs); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func encode(w io.Writer, jobs []models.JobRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.Columns); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(job.Row()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Load reads the whole handoff file. A missing file is a MissingInput error
// and anything unparsable is a MalformedInput error.
func (s *Store) Load(ctx context.Context, path string) (models.Table, error) {
	_, span := s.tracer.Start(ctx, "Store.Load")
	defer span.End()
	span.SetAttributes(telemetry.String("file.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Error("Data file not found, run the generator first", zap.String("file", path))
			return nil, errors.MissingInput(fmt.Sprintf("%s not found", path), err)
		}
		s.logger.Error("Error loading data", zap.String("file", path), zap.Error(err))
		return nil, errors.MalformedInput(fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	table, err := decode(f)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("Error loading data", zap.String("file", path), zap.Error(err))
		return nil, errors.MalformedInput(fmt.Sprintf("parsing %s", path), err)
	}

	span.SetAttributes(telemetry.Int("jobs.count", len(table)))
	s.logger.Info("Loaded jobs", zap.Int("count", len(table)), zap.String("file", path))
	return table, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decode(r io.Reader) (models.Table, error) {
	br := bufio.NewReader(r)
	if prefix, _ := br.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	reader := csv.NewReader(br)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, stderrors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, err
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	table := models.Table{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, err
		}

		table = append(table, models.JobRecord{
			Title:       row[index["title"]],
			Company:     row[index["company"]],
			Location:    row[index["location"]],
			Salary:      row[index["salary"]],
			Skills:      row[index["skills"]],
			PostedDate:  row[index["posted_date"]],
			ScrapedDate: row[index["scraped_date"]],
		})
	}
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	for _, name := range models.Columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return index, nil
}
