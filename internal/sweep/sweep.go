// Package sweep prices batches of independent parameter sets in
// parallel. Every job is a pure curve generation, so no ordering is
// required between jobs; results are still returned in input order for
// the caller's convenience.
package sweep

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"

	"github.com/contactkeval/option-curve/internal/curve"
	"github.com/contactkeval/option-curve/internal/logger"
	"github.com/contactkeval/option-curve/internal/pricing"
)

// Job is one parameter set to sweep.
type Job struct {
	Params pricing.Parameters `json:"params"`
	Config curve.Config       `json:"config"`
}

// Result pairs a job with its curve. Err is non-nil when the job's sweep
// configuration could not be resolved.
type Result struct {
	Job   Job
	Curve *curve.Curve
	Err   error
}

// Workers picks a worker count from the machine's logical CPU count.
func Workers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	return n
}

// Run generates a curve for every job using at most workers goroutines
// and returns the results in job order. bar may be nil; when set it is
// incremented once per completed job.
func Run(jobs []Job, workers int, bar *mpb.Bar) []Result {
	if workers < 1 {
		workers = Workers()
	}
	logger.Debugf("event=sweep_start jobs=%d workers=%d", len(jobs), workers)

	results := make([]Result, len(jobs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			c, err := curve.Generate(job.Params, job.Config)
			results[i] = Result{Job: job, Curve: c, Err: err}
			if err != nil {
				logger.Errorf("event=sweep_job_failed index=%d err=%v", i, err)
			}
			if bar != nil {
				bar.Increment()
			}
		}(i, job)
	}

	wg.Wait()
	return results
}
