package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"
	"capitalRuns/pkg/metrics"
)

// requiredColumns must all be present in an uploaded file before any row is
// converted.
var requiredColumns = []string{"product", "basel_event_type", "1in2", "1in5", "1in10", "1in20"}

// ExperimentRunWriter contract interface
type ExperimentRunWriter interface {
	CreateBatch(ctx context.Context, runs []domain.ExperimentRun) error
}

type ingestService struct {
	experimentRepo ExperimentRunWriter
	workDir        string
}

// NewIngestService returns the bulk-import service. workDir is where the
// transient copy of each upload is parsed from.
func NewIngestService(experimentRepo ExperimentRunWriter, workDir string) *ingestService {
	return &ingestService{
		experimentRepo: experimentRepo,
		workDir:        workDir,
	}
}

// ImportExperimentRuns copies the upload to a working file, validates its
// columns, converts every row into an experiment run stamped with the given
// business unit and a shared auto-generated experiment name, and appends
// them all. Returns the number of runs created.
//
// The working file is removed on success and on validation failure. Any I/O
// failure after the copy propagates as-is.
func (s *ingestService) ImportExperimentRuns(ctx context.Context, src io.Reader, businessUnit string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	if businessUnit == "" {
		return 0, errors.New("business unit is required")
	}

	start := time.Now()

	tmpPath := filepath.Join(s.workDir, "temp.csv")
	if err := copyToFile(tmpPath, src); err != nil {
		return 0, fmt.Errorf("failed to stage uploaded file: %w", err)
	}

	header, rows, err := readCSV(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to parse uploaded file: %w", err)
	}

	if missing := missingColumns(header); len(missing) > 0 {
		os.Remove(tmpPath)
		logger.Warn("csv upload rejected", "missing_columns", missing)
		return 0, &domain.ValidationError{Columns: missing}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	experimentName := fmt.Sprintf("CSV Upload - %s", time.Now().Format("2006-01-02 15:04:05"))

	runs := make([]domain.ExperimentRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.ExperimentRun{
			BusinessUnit:   businessUnit,
			Product:        field(row, cols, "product"),
			BaselEventType: field(row, cols, "basel_event_type"),
			ExperimentName: experimentName,
			OneInTwo:       field(row, cols, "1in2"),
			OneInFive:      field(row, cols, "1in5"),
			OneInTen:       field(row, cols, "1in10"),
			OneInTwenty:    field(row, cols, "1in20"),
		})
	}

	if err := s.experimentRepo.CreateBatch(ctx, runs); err != nil {
		return 0, fmt.Errorf("failed to save imported runs: %w", err)
	}

	os.Remove(tmpPath)

	metrics.ImportedRows.Add(float64(len(runs)))
	metrics.ImportDuration.Observe(time.Since(start).Seconds())
	logger.Info("csv import complete", "business_unit", businessUnit, "runs_created", len(runs), "experiment_name", experimentName)

	return len(runs), nil
}

func copyToFile(path string, src io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}

	return missing
}

func field(row []string, cols map[string]int, name string) string {
	idx := cols[name]
	if idx >= len(row) {
		return ""
	}

	return row[idx]
}
