package commands

import (
	"os"

	"github.com/misldy/testcase-converter/internal/cli"
	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/discovery"
	"github.com/misldy/testcase-converter/internal/execution"
	"github.com/misldy/testcase-converter/internal/storage"
	"github.com/misldy/testcase-converter/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Convert *ConvertCommand
	List    *ListCommand
	Inspect *InspectCommand
	Preview *PreviewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.IgnoreDirs)
	filter := discovery.NewFilter()
	sink := storage.NewFileSink()
	director := convert.NewDirector(cfg, sink)
	runner := execution.NewRunner(cfg, sink)
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	reports := storage.NewReportStorage(sink)
	formatter := ui.NewFormatter(cfg, os.Stdout)
	viewer := ui.NewSuiteViewer(cfg)

	return &Commands{
		Convert: NewConvertCommand(cfg, scanner, filter, director, executor, reports, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Inspect: NewInspectCommand(cfg, formatter),
		Preview: NewPreviewCommand(cfg, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Convert command
	convertCmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert test cases between table and mind-map formats",
		Long:  "Convert a CSV test-case table into an XMind mind map or back. When the input is a directory, every convertible file under it is converted in place.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Convert.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	convertCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file, or output directory for a directory input (default: next to the input)")
	convertCmd.Flags().StringVarP(&flags.Direction, "direction", "d", "auto", "Conversion direction: auto, tree2table or table2tree")
	convertCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files in a directory input by name pattern (supports wildcards, e.g. '*smoke*'; a pattern with '/' is matched as a glob against the relative path)")
	convertCmd.Flags().StringVar(&flags.Report, "report", "", "Write a JSON conversion report to the given file")
	convertCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Treat reader warnings (skipped rows, extra sheets) as errors")
	convertCmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "Module path delimiter inside table cells (default '/')")
	convertCmd.Flags().BoolVar(&flags.NoRepeat, "no-repeat", false, "Leave module, case, precondition and priority cells blank on continuation rows")
	convertCmd.Flags().IntVar(&flags.Depth, "depth", 0, "Topic depth at or below which mind-map topics are always groups")
	convertCmd.Flags().StringVar(&flags.Marker, "marker", "", "Title prefix marking mind-map topics as cases (e.g. '[TC] ')")
	convertCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of parallel workers for a directory input (default 4)")
	convertCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop converting after the first failed file")
	rootCmd.AddCommand(convertCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List convertible files",
		Long:  "Scan a directory (default: the current one) and list all convertible test-case files without converting them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g. '*smoke*')")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "Parse each file and show group, case and step counts")
	rootCmd.AddCommand(listCmd)

	// Inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the parsed suite without converting",
		Long:  "Parse a test-case file in either format and print the suite tree with step counts, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Inspect.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	inspectCmd.Flags().BoolVarP(&flags.StatsOnly, "stats", "s", false, "Print the summary table only")
	inspectCmd.Flags().BoolVar(&flags.Steps, "steps", false, "Print step actions and expected results under each case")
	inspectCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Treat reader warnings as errors")
	inspectCmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "Module path delimiter inside table cells (default '/')")
	inspectCmd.Flags().IntVar(&flags.Depth, "depth", 0, "Topic depth at or below which mind-map topics are always groups")
	inspectCmd.Flags().StringVar(&flags.Marker, "marker", "", "Title prefix marking mind-map topics as cases")
	rootCmd.AddCommand(inspectCmd)

	// Preview command
	previewCmd := &cobra.Command{
		Use:   "preview <input>",
		Short: "Browse the parsed suite interactively",
		Long:  "Parse a test-case file in either format and browse groups, cases and steps in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Preview.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	previewCmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "Module path delimiter inside table cells (default '/')")
	previewCmd.Flags().IntVar(&flags.Depth, "depth", 0, "Topic depth at or below which mind-map topics are always groups")
	previewCmd.Flags().StringVar(&flags.Marker, "marker", "", "Title prefix marking mind-map topics as cases")
	rootCmd.AddCommand(previewCmd)
}
