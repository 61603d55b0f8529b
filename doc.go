// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Package simdrive drives a batch of independent external simulation
// processes to completion. A [Scheduler] owns the full set of pending jobs
// and keeps at most a configured number of processes in flight at once; each
// running process is watched by its own monitoring goroutine, which reports
// the process's exit status and captured output streams through a completion
// channel consumed by a single control loop.
//
// A failure in one job, whether the process could not be launched at all or
// exited with a non-zero status, is recorded as a failed [Outcome] for that
// job only. The slot is freed and the batch continues; no job can block or
// corrupt another job's slot.
//
// The scheduler makes no attempt to cancel or time out individual processes.
// A hung process occupies its slot for the lifetime of the run, and child
// processes already launched when the run is canceled are left to exit on
// their own.
package simdrive
