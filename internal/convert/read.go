package convert

import (
	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
	"github.com/misldy/testcase-converter/internal/mindmap"
	"github.com/misldy/testcase-converter/internal/spreadsheet"
)

// ReadSuite parses path as whichever format its extension names and returns
// the suite with any reader warnings. Used by commands that only display a
// suite instead of converting it.
func ReadSuite(cfg *config.Config, path string) (*domain.Suite, []domain.Warning, error) {
	dir, err := InferDirection(path)
	if err != nil {
		return nil, nil, err
	}
	if dir == TreeToTable {
		return mindmap.NewReader(cfg).ReadFile(path)
	}
	return spreadsheet.NewReader(cfg).ReadFile(path)
}
