package execution

import (
	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/convert"
	"github.com/misldy/testcase-converter/internal/storage"
)

// Runner converts a single file
type Runner struct {
	config *config.Config
	sink   storage.Sink
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, sink storage.Sink) *Runner {
	return &Runner{config: cfg, sink: sink}
}

// Run converts one file. Every call works on its own config copy and
// director, so concurrent workers name and convert suites independently.
func (r *Runner) Run(job Job) FileResult {
	cfg := *r.config
	if job.SuiteName != "" {
		cfg.SuiteName = job.SuiteName
	}

	director := convert.NewDirector(&cfg, r.sink)
	res, err := director.Convert(convert.Request{
		Input:     job.Input,
		Output:    job.Output,
		Direction: job.Direction,
	})

	return FileResult{
		Input:     job.Input,
		Direction: job.Direction,
		Result:    res,
		Err:       err,
	}
}
