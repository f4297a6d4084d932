package commands

import (
	"github.com/spf13/cobra"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/ui"
)

// PreviewCommand handles the preview command
type PreviewCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(cfg *config.Config, viewer ui.Viewer) *PreviewCommand {
	return &PreviewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (pc *PreviewCommand) Execute(cmd *cobra.Command, args []string) error {
	input := args[0]
	pc.config.SuiteName = fileStem(input)

	suite, _, err := convert.ReadSuite(pc.config, input)
	if err != nil {
		return err
	}

	return pc.viewer.View(suite)
}
