package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/discovery"
	"github.com/misldy/testcase-converter/internal/domain"
	"github.com/misldy/testcase-converter/internal/execution"
	"github.com/misldy/testcase-converter/internal/storage"
	"github.com/misldy/testcase-converter/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ConvertCommand handles the convert command
type ConvertCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	director  *convert.Director
	executor  *execution.WorkerPool
	reports   *storage.ReportStorage
	formatter *ui.Formatter
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	director *convert.Director,
	executor *execution.WorkerPool,
	reports *storage.ReportStorage,
	formatter *ui.Formatter,
) *ConvertCommand {
	return &ConvertCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		director:  director,
		executor:  executor,
		reports:   reports,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *ConvertCommand) Execute(cmd *cobra.Command, args []string) error {
	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("cannot read input %s: %w", input, err)
	}
	if info.IsDir() {
		return cc.convertDir(input)
	}
	return cc.convertFile(input)
}

func (cc *ConvertCommand) convertFile(input string) error {
	dir, err := cc.directionFor(input)
	if err != nil {
		return err
	}
	output := cc.config.Flags.Output
	if output == "" {
		output = replaceExt(input, dir.OutputExt())
	}
	// The suite takes its name from the file; mind-map sources override it
	// with their root topic title.
	cc.config.SuiteName = fileStem(input)

	start := time.Now()
	res, convErr := cc.director.Convert(convert.Request{Input: input, Output: output, Direction: dir})
	entry := reportEntry(input, dir, res, convErr)
	if err := cc.saveReport([]domain.ReportEntry{entry}, time.Since(start)); err != nil && convErr == nil {
		return fmt.Errorf("failed to save conversion report: %w", err)
	}
	if convErr != nil {
		return convErr
	}

	cc.formatter.PrintSummary(input, res)
	return nil
}

func (cc *ConvertCommand) convertDir(root string) error {
	files, err := cc.discover(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No convertible files found")
		return nil
	}

	jobs := make([]execution.Job, 0, len(files))
	for _, input := range files {
		dir, err := cc.directionFor(input)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, input)
		if err != nil {
			return err
		}
		jobs = append(jobs, execution.Job{
			Input:     input,
			Output:    cc.batchOutput(root, rel, dir),
			Direction: dir,
			SuiteName: fileStem(input),
		})
	}

	// Convert in parallel
	progress := ui.NewProgressBar(len(jobs))
	cc.executor.SetProgress(progress)
	results, duration, err := cc.executor.ExecuteWithOptions(jobs, cc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	var converted, failed int
	entries := make([]domain.ReportEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, reportEntry(r.Input, r.Direction, r.Result, r.Err))
		if r.Err != nil {
			failed++
		} else {
			converted++
		}
	}

	for _, r := range results {
		if r.Err != nil {
			cc.formatter.PrintError(r.Input, r.Err)
		} else if len(r.Result.Warnings) > 0 {
			color.Yellow("⚠ %s:", r.Input)
			cc.formatter.PrintWarnings(r.Result.Warnings)
		}
	}
	cc.formatter.PrintBatchSummary(converted, failed)

	if err := cc.saveReport(entries, duration); err != nil {
		return fmt.Errorf("failed to save conversion report: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to convert", failed, len(jobs))
	}
	return nil
}

// discover lists convertible files under root, applying the name filter.
// When the direction flag is explicit only files on its input side are kept.
func (cc *ConvertCommand) discover(root string) ([]string, error) {
	pattern := cc.config.Flags.NameFilter

	var files []string
	var err error
	if strings.Contains(pattern, "/") {
		files, err = cc.scanner.Glob(root, pattern)
	} else {
		files, err = cc.scanner.Scan(root)
	}
	if err != nil {
		return nil, err
	}
	if !strings.Contains(pattern, "/") {
		files = cc.filter.ByName(files, pattern)
	}

	flag := cc.config.Flags.Direction
	if flag == "" || flag == "auto" {
		return files, nil
	}
	want, err := parseDirection(flag)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, f := range files {
		if dir, err := convert.InferDirection(f); err == nil && dir == want {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// directionFor resolves the effective direction for one input file.
func (cc *ConvertCommand) directionFor(input string) (convert.Direction, error) {
	flag := cc.config.Flags.Direction
	if flag == "" || flag == "auto" {
		return convert.InferDirection(input)
	}
	return parseDirection(flag)
}

func parseDirection(flag string) (convert.Direction, error) {
	switch flag {
	case convert.TreeToTable.String():
		return convert.TreeToTable, nil
	case convert.TableToTree.String():
		return convert.TableToTree, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (use auto, %s or %s)",
			flag, convert.TreeToTable, convert.TableToTree)
	}
}

// batchOutput mirrors rel under the output directory, or places the output
// next to its input when no output directory is given.
func (cc *ConvertCommand) batchOutput(root, rel string, dir convert.Direction) string {
	out := replaceExt(rel, dir.OutputExt())
	if cc.config.Flags.Output != "" {
		return filepath.Join(cc.config.Flags.Output, out)
	}
	return filepath.Join(root, out)
}

// saveReport writes the JSON report when --report is set.
func (cc *ConvertCommand) saveReport(entries []domain.ReportEntry, duration time.Duration) error {
	if cc.config.Flags.Report == "" {
		return nil
	}
	return cc.reports.Save(cc.config.Flags.Report, entries, duration)
}

// reportEntry summarizes one conversion for the JSON report.
func reportEntry(input string, dir convert.Direction, res *convert.Result, err error) domain.ReportEntry {
	entry := domain.ReportEntry{Input: input, Direction: dir.String()}
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Output = res.Output
	entry.Groups = res.Stats.Groups
	entry.Cases = res.Stats.Cases
	entry.Steps = res.Stats.Steps
	for _, w := range res.Warnings {
		entry.Warnings = append(entry.Warnings, w.String())
	}
	return entry
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
