// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

package simdrive

import "time"

// A Job is a single external simulation invocation over one heap dump.
// Command is the full argument vector, with Command[0] naming the executable.
// OutputPath is where the process's captured standard output will be
// persisted if the job succeeds. A Job is immutable once created.
type Job struct {
	Command    []string
	OutputPath string
}

// An Outcome is the terminal record of a finished job. Exactly one Outcome is
// produced per job. ExitOK reports whether the process was launched and
// exited with status zero; Err carries the launch or exit error otherwise.
// Stdout and Stderr hold the complete captured contents of the process's
// output streams.
type Outcome struct {
	Job    Job
	ExitOK bool
	Stdout []byte
	Stderr []byte
	Err    error
}

// An OutcomeFunc consumes the Outcome of a completed job. It is called from
// the scheduler's single control loop, once per job, so it may safely access
// and mutate caller state without synchronization. Execution of an
// OutcomeFunc delays dispatch of further pending jobs, so expensive handling
// adds backpressure to the batch.
type OutcomeFunc = func(Outcome)

// A Summary reports the terminal state of a batch. Succeeded plus Failed
// equals Total when the batch ran to completion.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}
