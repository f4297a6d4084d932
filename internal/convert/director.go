package convert

import (
	"time"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
	"github.com/misldy/testcase-converter/internal/mindmap"
	"github.com/misldy/testcase-converter/internal/spreadsheet"
	"github.com/misldy/testcase-converter/internal/storage"
)

// State tracks a conversion through its lifecycle. Done and Failed are
// terminal; nothing is retried.
type State int

const (
	StateIdle State = iota
	StateReading
	StateConverting
	StateWriting
	StateDone
	StateFailed
)

// String returns the state name for summaries and debugging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateConverting:
		return "converting"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request describes one conversion. The direction is always explicit here;
// extension sniffing is the caller's concern.
type Request struct {
	Input     string
	Output    string
	Direction Direction
}

// Result describes a finished conversion.
type Result struct {
	Output    string
	Direction Direction
	Stats     domain.Stats
	Warnings  []domain.Warning
	// Written counts output units: data rows for a tabular destination,
	// topics for a hierarchical one.
	Written  int
	Duration time.Duration
}

// Director runs one conversion at a time: read and parse the source, render
// the opposite format in memory, then commit the buffered output through
// the sink. A failed conversion never leaves a partial output file.
type Director struct {
	cfg   *config.Config
	sink  storage.Sink
	state State
}

// NewDirector creates a Director writing through the given sink.
func NewDirector(cfg *config.Config, sink storage.Sink) *Director {
	return &Director{cfg: cfg, sink: sink, state: StateIdle}
}

// State returns the lifecycle state of the most recent conversion.
func (d *Director) State() State {
	return d.state
}

// Convert runs req to completion and returns the result of the conversion.
func (d *Director) Convert(req Request) (*Result, error) {
	start := time.Now()

	d.state = StateReading
	suite, warnings, err := d.read(req)
	if err != nil {
		d.state = StateFailed
		return nil, err
	}
	if d.cfg.Flags.Strict && len(warnings) > 0 {
		d.state = StateFailed
		return nil, domain.MalformedDocument(warnings[0].Location,
			"strict mode: %d warning(s), first: %s", len(warnings), warnings[0].Message)
	}

	d.state = StateConverting
	data, err := d.render(req.Direction, suite)
	if err != nil {
		d.state = StateFailed
		return nil, err
	}

	d.state = StateWriting
	if err := d.sink.Commit(req.Output, data); err != nil {
		d.state = StateFailed
		return nil, domain.WriteFailure(req.Output, err)
	}

	d.state = StateDone
	stats := suite.Stats()
	return &Result{
		Output:    req.Output,
		Direction: req.Direction,
		Stats:     stats,
		Warnings:  warnings,
		Written:   written(req.Direction, suite, stats),
		Duration:  time.Since(start),
	}, nil
}

func (d *Director) read(req Request) (*domain.Suite, []domain.Warning, error) {
	if req.Direction == TreeToTable {
		return mindmap.NewReader(d.cfg).ReadFile(req.Input)
	}
	return spreadsheet.NewReader(d.cfg).ReadFile(req.Input)
}

func (d *Director) render(dir Direction, suite *domain.Suite) ([]byte, error) {
	if dir == TreeToTable {
		return spreadsheet.NewWriter(d.cfg).Write(suite)
	}
	return mindmap.NewWriter(d.cfg).Write(suite)
}

// written counts the output units for the Result.
func written(dir Direction, suite *domain.Suite, stats domain.Stats) int {
	if dir == TableToTree {
		// Root topic plus one topic per group, case and step.
		return 1 + stats.Groups + stats.Cases + stats.Steps
	}
	rows := 0
	suite.WalkCases(func(_ []string, c *domain.Case) error {
		if len(c.Steps) > 0 {
			rows += len(c.Steps)
		} else {
			rows++
		}
		return nil
	})
	return rows
}
