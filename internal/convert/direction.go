// Package convert orchestrates single conversions between the tabular and
// hierarchical formats.
package convert

import (
	"path/filepath"
	"strings"

	"github.com/misldy/testcase-converter/internal/domain"
)

// Direction selects which way a conversion runs.
type Direction int

const (
	// TreeToTable reads a hierarchical document and writes a tabular one.
	TreeToTable Direction = iota
	// TableToTree reads a tabular document and writes a hierarchical one.
	TableToTree
)

// String returns the direction in the CLI's spelling.
func (d Direction) String() string {
	switch d {
	case TreeToTable:
		return "tree2table"
	case TableToTree:
		return "table2tree"
	default:
		return "unknown"
	}
}

// OutputExt returns the destination file extension for the direction.
func (d Direction) OutputExt() string {
	if d == TableToTree {
		return ".xmind"
	}
	return ".csv"
}

// InferDirection picks a direction from the input file extension: .xmind
// and .xml are hierarchical sources, .csv is a tabular one. Anything else
// needs an explicit direction.
func InferDirection(path string) (Direction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xmind", ".xml":
		return TreeToTable, nil
	case ".csv":
		return TableToTree, nil
	default:
		return 0, domain.AmbiguousDirection(path)
	}
}
