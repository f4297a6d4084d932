package execution

import (
	"time"

	"github.com/misldy/testcase-converter/internal/convert"
)

// Job describes one file conversion for the pool. The suite name travels
// with the job so workers never share mutable naming state.
type Job struct {
	Input     string
	Output    string
	Direction convert.Direction
	SuiteName string
}

// FileResult is the outcome of converting one file.
type FileResult struct {
	Input     string
	Direction convert.Direction
	Result    *convert.Result
	Err       error
}

// Executor converts batches of files and returns per-file results
type Executor interface {
	Execute(jobs []Job) ([]FileResult, time.Duration, error)
}
