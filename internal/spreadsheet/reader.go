package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader parses a tabular document into a suite.
type Reader struct {
	cfg *config.Config
}

// NewReader creates a Reader using the given configuration.
func NewReader(cfg *config.Config) *Reader {
	return &Reader{cfg: cfg}
}

// ReadFile reads and parses the CSV file at path.
func (r *Reader) ReadFile(path string) (*domain.Suite, []domain.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read table file: %w", err)
	}
	return r.Read(data)
}

// Read parses CSV bytes. The first row must be a header; data rows are
// grouped into cases by their (module path, case name) pair: the pair
// changing starts a new case, identical contiguous pairs and rows with a
// blank case name continue the previous one. It returns the suite,
// non-fatal warnings, and the first error encountered.
func (r *Reader) Read(data []byte) (*domain.Suite, []domain.Warning, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	// Ragged rows are tolerated; short rows read as blank cells.
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, domain.MalformedDocument("", "cannot parse CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, nil, domain.MalformedDocument("", "document has no rows")
	}

	lay, err := resolveLayout(records[0])
	if err != nil {
		return nil, nil, err
	}

	suite := domain.NewSuite(r.cfg.SuiteName)
	var warnings []domain.Warning

	var cur *domain.Case
	var curKey string
	skipping := false

	for i, rec := range records[1:] {
		row := i + 2
		module := lay.get(rec, colModule)
		name := lay.get(rec, colCase)
		action := lay.get(rec, colAction)
		expected := lay.get(rec, colExpected)

		if name == "" {
			if action == "" {
				continue
			}
			if skipping {
				continue
			}
			if cur == nil {
				return nil, nil, domain.OrphanStepRow(row)
			}
			cur.AddStep(action, expected)
			continue
		}

		key := module + "\x00" + name
		if key == curKey {
			// Continuation with repeated case fields.
			if !skipping && action != "" {
				cur.AddStep(action, expected)
			}
			continue
		}

		curKey = key
		segments := splitModulePath(module, r.cfg.ModuleDelimiter)
		if len(segments) == 0 {
			// Every case belongs to a group; without a module path the row
			// cannot be attached.
			warnings = append(warnings, domain.Warningf(rowLocation(row), "row has no module path, skipped"))
			cur = nil
			skipping = true
			continue
		}

		skipping = false
		cur = ensureGroup(suite, segments).AddCase(name)
		cur.Precondition = lay.get(rec, colPrecondition)
		cur.Priority = lay.get(rec, colPriority)
		if action != "" {
			cur.AddStep(action, expected)
		}
	}
	return suite, warnings, nil
}

// splitModulePath splits a module path on the delimiter, trimming segments
// and collapsing empty ones.
func splitModulePath(path, delimiter string) []string {
	var segments []string
	for _, seg := range strings.Split(path, delimiter) {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ensureGroup walks the segments get-or-create, so a module path met again
// merges into the existing groups.
func ensureGroup(s *domain.Suite, segments []string) *domain.Group {
	g := s.Group(segments[0])
	if g == nil {
		g = s.AddGroup(segments[0])
	}
	for _, seg := range segments[1:] {
		next := g.Group(seg)
		if next == nil {
			next = g.AddGroup(seg)
		}
		g = next
	}
	return g
}

func rowLocation(row int) string {
	return fmt.Sprintf("row %d", row)
}
