package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/misldy/testcase-converter/internal/domain"
)

// ReportStorage writes conversion reports as indented JSON through a Sink.
type ReportStorage struct {
	sink Sink
}

// NewReportStorage returns a ReportStorage committing through sink.
func NewReportStorage(sink Sink) *ReportStorage {
	return &ReportStorage{sink: sink}
}

// Save aggregates the per-input entries into a report and writes it to path.
func (s *ReportStorage) Save(path string, entries []domain.ReportEntry, duration time.Duration) error {
	meta := domain.ReportMeta{
		TotalInputs:     len(entries),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, e := range entries {
		if e.Error != "" {
			meta.Failed++
			continue
		}
		meta.Converted++
		meta.Groups += e.Groups
		meta.Cases += e.Cases
		meta.Steps += e.Steps
		meta.Warnings += len(e.Warnings)
	}

	report := domain.Report{Meta: meta, Details: entries}
	data, err := json.MarshalIndent(&report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := s.sink.Commit(path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
