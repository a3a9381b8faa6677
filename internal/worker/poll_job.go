package worker

import (
	"context"
)

// Cycler runs one fetch-extract-write cycle
type Cycler interface {
	RunCycle(ctx context.Context) error
}

// PollJob runs a scraper cycle on the pool
type PollJob struct {
	cycler Cycler
}

// NewPollJob creates a new PollJob
func NewPollJob(cycler Cycler) *PollJob {
	return &PollJob{cycler: cycler}
}

// Process implements Job
func (j *PollJob) Process(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return j.cycler.RunCycle(ctx)
}
