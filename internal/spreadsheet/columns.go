// Package spreadsheet reads and writes the tabular test-case format: RFC
// 4180 CSV with one row per step.
package spreadsheet

import (
	"strings"

	"github.com/misldy/testcase-converter/internal/domain"
)

// column indexes the canonical layout.
type column int

const (
	colModule column = iota
	colCase
	colPrecondition
	colStep
	colAction
	colExpected
	colPriority
	columnCount
)

// headers is the canonical header row the Writer emits.
var headers = []string{"Module", "Case", "Precondition", "Step", "Action", "Expected", "Priority"}

// synonyms maps normalized header names to columns. The Reader locates
// columns by name, so exports with reordered or renamed headers still parse.
var synonyms = map[string]column{
	"module":           colModule,
	"module path":      colModule,
	"modules":          colModule,
	"path":             colModule,
	"case":             colCase,
	"case name":        colCase,
	"test case":        colCase,
	"name":             colCase,
	"title":            colCase,
	"precondition":     colPrecondition,
	"preconditions":    colPrecondition,
	"pre-condition":    colPrecondition,
	"step":             colStep,
	"step no":          colStep,
	"step number":      colStep,
	"no":               colStep,
	"#":                colStep,
	"action":           colAction,
	"step action":      colAction,
	"steps":            colAction,
	"step description": colAction,
	"description":      colAction,
	"expected":         colExpected,
	"expected result":  colExpected,
	"expected results": colExpected,
	"result":           colExpected,
	"priority":         colPriority,
	"prio":             colPriority,
}

// layout maps each canonical column to its index in the input header, -1
// when the column is absent.
type layout [columnCount]int

// resolveLayout locates the canonical columns in a header row. The first
// occurrence of a name wins. Module, case and action are required.
func resolveLayout(header []string) (layout, error) {
	var l layout
	for i := range l {
		l[i] = -1
	}
	for idx, cell := range header {
		col, ok := synonyms[strings.ToLower(strings.TrimSpace(cell))]
		if ok && l[col] == -1 {
			l[col] = idx
		}
	}
	for _, req := range []struct {
		col  column
		name string
	}{
		{colModule, "module path"},
		{colCase, "case name"},
		{colAction, "step action"},
	} {
		if l[req.col] == -1 {
			return l, domain.MissingRequiredColumn(req.name)
		}
	}
	return l, nil
}

// get returns the trimmed cell for a column, tolerating ragged rows.
func (l layout) get(record []string, c column) string {
	i := l[c]
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
