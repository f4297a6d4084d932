package commands

import (
	"github.com/spf13/cobra"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/domain"
	"github.com/misldy/testcase-converter/internal/ui"
)

// InspectCommand handles the inspect command
type InspectCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(cfg *config.Config, formatter *ui.Formatter) *InspectCommand {
	return &InspectCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (ic *InspectCommand) Execute(cmd *cobra.Command, args []string) error {
	input := args[0]
	ic.config.SuiteName = fileStem(input)

	suite, warnings, err := convert.ReadSuite(ic.config, input)
	if err != nil {
		return err
	}
	if ic.config.Flags.Strict && len(warnings) > 0 {
		return domain.MalformedDocument(warnings[0].Location,
			"strict mode: %d warning(s), first: %s", len(warnings), warnings[0].Message)
	}

	if ic.config.Flags.StatsOnly {
		ic.formatter.PrintStats(suite)
		return nil
	}

	ic.formatter.PrintWarnings(warnings)
	ic.formatter.PrintSuiteTree(suite, ic.config.Flags.Steps)
	return nil
}
