package execution

import (
	"sort"
	"sync"
	"time"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/ui"
)

// WorkerPool manages a pool of workers for parallel file conversion
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute converts all jobs in parallel (no fail-fast).
func (wp *WorkerPool) Execute(jobs []Job) ([]FileResult, time.Duration, error) {
	return wp.ExecuteWithOptions(jobs, false)
}

// ExecuteWithOptions converts jobs with optional fail-fast: after the first
// failed conversion the remaining jobs are left unconverted. Results come
// back sorted by input path regardless of completion order.
func (wp *WorkerPool) ExecuteWithOptions(jobs []Job, failFast bool) ([]FileResult, time.Duration, error) {
	if len(jobs) == 0 {
		return nil, 0, nil
	}

	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	batches := wp.scheduler.Schedule(jobs, workerCount)
	results := make(chan FileResult, len(jobs))

	var mu sync.Mutex
	var converted, failed int
	var seenFailure bool

	var wg sync.WaitGroup
	for _, batch := range batches {
		if len(batch) == 0 {
			continue
		}
		wg.Add(1)
		go func(batch []Job) {
			defer wg.Done()
			for _, job := range batch {
				if failFast {
					mu.Lock()
					done := seenFailure
					mu.Unlock()
					if done {
						return
					}
				}

				result := wp.runner.Run(job)
				results <- result

				mu.Lock()
				if result.Err != nil {
					failed++
					seenFailure = true
				} else {
					converted++
				}
				if wp.progress != nil {
					wp.progress.Update(converted, failed)
				}
				mu.Unlock()
			}
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	allResults := make([]FileResult, 0, len(jobs))
	for result := range results {
		allResults = append(allResults, result)
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Input < allResults[j].Input
	})

	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
