// Package ui renders suite trees, conversion summaries and progress for the
// terminal.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/domain"
)

// timeRounding keeps durations readable in summaries.
const timeRounding = time.Millisecond

// Formatter formats and displays converter output.
type Formatter struct {
	config *config.Config
	out    io.Writer

	green  *color.Color
	cyan   *color.Color
	yellow *color.Color
	red    *color.Color
	white  *color.Color
}

// NewFormatter creates a Formatter writing to out.
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
		green:  color.New(color.FgGreen),
		cyan:   color.New(color.FgCyan),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		white:  color.New(color.FgWhite),
	}
}

// PrintSuiteTree prints the suite as an indented tree: groups in cyan,
// cases in yellow with their step counts, and, when showSteps is set, the
// numbered steps with expected results.
func (f *Formatter) PrintSuiteTree(s *domain.Suite, showSteps bool) {
	stats := s.Stats()
	f.green.Fprintf(f.out, "Suite %q: %d group(s), %d case(s), %d step(s)\n",
		s.Name, stats.Groups, stats.Cases, stats.Steps)

	for i, g := range s.Groups {
		f.printGroup(g, "", i == len(s.Groups)-1, showSteps)
	}
}

func (f *Formatter) printGroup(g *domain.Group, prefix string, isLast bool, showSteps bool) {
	connector, childPrefix := branch(prefix, isLast)
	f.cyan.Fprintf(f.out, "%s%s\n", connector, g.Name)

	children := len(g.Groups) + len(g.Cases)
	seen := 0
	for _, sub := range g.Groups {
		seen++
		f.printGroup(sub, childPrefix, seen == children, showSteps)
	}
	for _, c := range g.Cases {
		seen++
		f.printCase(c, childPrefix, seen == children, showSteps)
	}
}

func (f *Formatter) printCase(c *domain.Case, prefix string, isLast bool, showSteps bool) {
	connector, childPrefix := branch(prefix, isLast)

	marker := ""
	if c.Priority != "" {
		marker = fmt.Sprintf(" [P%s]", c.Priority)
	}
	f.yellow.Fprintf(f.out, "%s%s%s (%d step(s))\n", connector, c.Name, marker, len(c.Steps))

	if !showSteps {
		return
	}
	if c.Precondition != "" {
		fmt.Fprintf(f.out, "%s· precondition: %s\n", childPrefix, c.Precondition)
	}
	for i, st := range c.Steps {
		line := fmt.Sprintf("%d. %s", i+1, st.Action)
		if st.Expected != "" {
			line += " -> " + st.Expected
		}
		fmt.Fprintf(f.out, "%s%s\n", childPrefix, line)
	}
}

// branch returns the connector for a node and the prefix for its children.
func branch(prefix string, isLast bool) (connector, childPrefix string) {
	if isLast {
		return prefix + "└── ", prefix + "    "
	}
	return prefix + "├── ", prefix + "│   "
}

// PrintStats prints the suite summary table.
func (f *Formatter) PrintStats(s *domain.Suite) {
	stats := s.Stats()

	fmt.Fprint(f.out, "\n")
	f.cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	f.cyan.Fprintf(f.out, "║ %-61s ║\n", "Suite Statistics: "+s.Name)
	f.cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.printStatRow("Groups", stats.Groups)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStatRow("Cases", stats.Cases)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStatRow("Steps", stats.Steps)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
}

func (f *Formatter) printStatRow(label string, value int) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	f.white.Fprintf(f.out, "%-27d", value)
	fmt.Fprintln(f.out, " │")
}

// PrintSummary prints the one-conversion result line and any warnings.
func (f *Formatter) PrintSummary(input string, res *convert.Result) {
	unit := "row(s)"
	if res.Direction == convert.TableToTree {
		unit = "topic(s)"
	}
	f.green.Fprintf(f.out, "✓ %s → %s\n", input, res.Output)
	fmt.Fprintf(f.out, "  %d group(s), %d case(s), %d step(s); wrote %d %s in %s\n",
		res.Stats.Groups, res.Stats.Cases, res.Stats.Steps, res.Written, unit,
		res.Duration.Round(timeRounding))
	f.PrintWarnings(res.Warnings)
}

// PrintWarnings prints non-fatal reader warnings.
func (f *Formatter) PrintWarnings(warnings []domain.Warning) {
	for _, w := range warnings {
		f.yellow.Fprintf(f.out, "  ⚠ %s\n", w)
	}
}

// PrintBatchSummary prints the final line of a directory conversion.
func (f *Formatter) PrintBatchSummary(converted, failed int) {
	if failed == 0 {
		f.green.Fprintf(f.out, "✓ converted %d file(s)\n", converted)
		return
	}
	f.red.Fprintf(f.out, "✗ %d file(s) failed, %d converted\n", failed, converted)
}

// PrintError prints a conversion failure.
func (f *Formatter) PrintError(input string, err error) {
	f.red.Fprintf(f.out, "✗ %s: %v\n", input, err)
}

// FileDetail carries per-file counts for the detailed listing. Err marks
// files that could not be parsed.
type FileDetail struct {
	Stats domain.Stats
	Err   error
}

// PrintFileList prints the convertible files found under a directory. When
// details is non-nil it carries one entry per file with parsed counts.
func (f *Formatter) PrintFileList(files []string, details []FileDetail) {
	f.green.Fprintf(f.out, "Found %d convertible file(s):\n\n", len(files))

	for i, file := range files {
		connector := "├── "
		if i == len(files)-1 {
			connector = "└── "
		}

		if details == nil {
			fmt.Fprintf(f.out, "%s%s\n", connector, f.cyan.Sprint(file))
			continue
		}

		d := details[i]
		if d.Err != nil {
			fmt.Fprintf(f.out, "%s%s %s\n", connector, f.cyan.Sprint(file),
				f.red.Sprintf("(unreadable: %v)", d.Err))
			continue
		}
		fmt.Fprintf(f.out, "%s%s %s\n", connector, f.cyan.Sprint(file),
			f.yellow.Sprintf("(%d group(s), %d case(s), %d step(s))",
				d.Stats.Groups, d.Stats.Cases, d.Stats.Steps))
	}
}
