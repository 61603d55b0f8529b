// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

package simdrive

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/gammazero/deque"
)

// A Scheduler drives a fixed set of jobs to completion while keeping at most
// a configured number of external processes in flight. Jobs are dispatched in
// the order given, so for a given input ordering the dispatch order is fully
// deterministic.
//
// All scheduler state is owned and mutated by the single control loop inside
// [Scheduler.Run]; a Scheduler must not be shared across goroutines and must
// not be run more than once.
type Scheduler struct {
	workers     int
	total       int
	pending     deque.Deque[Job]
	inFlight    int
	completions chan Outcome
}

// NewScheduler creates a scheduler over the given job set. workers bounds the
// number of concurrently running processes; values below one are clamped to
// one.
func NewScheduler(jobs []Job, workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	s := &Scheduler{
		workers: workers,
		total:   len(jobs),
		// Buffered for one completion per slot so that monitoring goroutines
		// never block on send, even if Run returns early.
		completions: make(chan Outcome, workers),
	}
	for _, job := range jobs {
		s.pending.PushBack(job)
	}
	return s
}

// Run drives every job to a terminal state and returns a summary of the
// batch. Each completion is passed to handle (if non-nil) from the control
// loop before the freed slot is refilled. A job that fails to launch or exits
// non-zero yields a failed [Outcome]; it never aborts the batch, and Run
// itself returns a nil error in that case.
//
// If ctx is canceled, Run returns the context's error along with a summary of
// the jobs that completed before cancellation. Processes already in flight
// are not signaled and will exit on their own.
func (s *Scheduler) Run(ctx context.Context, handle OutcomeFunc) (Summary, error) {
	start := time.Now()
	summary := Summary{Total: s.total}
	for s.pending.Len() > 0 || s.inFlight > 0 {
		for s.pending.Len() > 0 && s.inFlight < s.workers {
			s.launch(s.pending.PopFront())
			s.inFlight++
		}
		select {
		case o := <-s.completions:
			s.inFlight--
			if o.ExitOK {
				summary.Succeeded++
			} else {
				summary.Failed++
			}
			if handle != nil {
				handle(o)
			}
		case <-ctx.Done():
			summary.Elapsed = time.Since(start)
			return summary, ctx.Err()
		}
	}
	summary.Elapsed = time.Since(start)
	return summary, nil
}

// launch starts the job's process with both output streams captured. The exit
// status is collected by a dedicated monitoring goroutine that posts the
// job's Outcome to the completion channel. A launch failure posts an
// immediate failed Outcome instead; the channel has capacity for one entry
// per slot, so neither path can block.
func (s *Scheduler) launch(job Job) {
	if len(job.Command) == 0 {
		s.completions <- Outcome{Job: job, Err: ErrEmptyCommand}
		return
	}
	cmd := exec.Command(job.Command[0], job.Command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		s.completions <- Outcome{Job: job, Err: err}
		return
	}
	go func() {
		err := cmd.Wait()
		s.completions <- Outcome{
			Job:    job,
			ExitOK: err == nil,
			Stdout: stdout.Bytes(),
			Stderr: stderr.Bytes(),
			Err:    err,
		}
	}()
}
