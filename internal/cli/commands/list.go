package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/discovery"
	"github.com/misldy/testcase-converter/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	files, err := lc.scanner.Scan(root)
	if err != nil {
		return err
	}

	// Filter files
	files = lc.filter.ByName(files, lc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No convertible files found")
		return nil
	}

	if !lc.config.Flags.Cases {
		lc.formatter.PrintFileList(files, nil)
		return nil
	}

	details := make([]ui.FileDetail, len(files))
	for i, input := range files {
		lc.config.SuiteName = fileStem(input)

		suite, _, err := convert.ReadSuite(lc.config, input)
		if err != nil {
			details[i] = ui.FileDetail{Err: err}
			continue
		}
		details[i] = ui.FileDetail{Stats: suite.Stats()}
	}
	lc.formatter.PrintFileList(files, details)
	return nil
}
