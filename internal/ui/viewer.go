package ui

import "github.com/misldy/testcase-converter/internal/domain"

// Viewer displays a parsed suite in an interactive TUI.
type Viewer interface {
	View(s *domain.Suite) error
}
