package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

// Writer serializes a suite into the tabular format.
type Writer struct {
	cfg *config.Config
}

// NewWriter creates a Writer using the given configuration.
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write renders the suite as CSV: the canonical header row, then one row
// per step in case-walk order, 1-indexed step numbers. A case with no steps
// emits a single row with blank step fields. With RepeatCaseFields off,
// module, case, precondition and priority appear on the first row of each
// case only. Output is deterministic: identical suites produce identical
// bytes. Groups with no cases anywhere beneath them have no tabular
// representation and are dropped.
func (w *Writer) Write(s *domain.Suite) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	err := s.WalkCases(func(path []string, c *domain.Case) error {
		module := strings.Join(path, w.cfg.ModuleDelimiter)
		if len(c.Steps) == 0 {
			return cw.Write([]string{module, c.Name, c.Precondition, "", "", "", c.Priority})
		}
		for i, st := range c.Steps {
			rec := []string{module, c.Name, c.Precondition, strconv.Itoa(i + 1), st.Action, st.Expected, c.Priority}
			if i > 0 && !w.cfg.RepeatCaseFields {
				rec[colModule] = ""
				rec[colCase] = ""
				rec[colPrecondition] = ""
				rec[colPriority] = ""
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("write case rows: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush rows: %w", err)
	}
	return buf.Bytes(), nil
}
