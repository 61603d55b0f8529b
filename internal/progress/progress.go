// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Package progress renders a single-line progress bar with an ETA estimate.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const barWidth = 40

// A Reporter re-renders a fixed-width progress line in place after every job
// completion. It is driven from the scheduler's control loop and is not safe
// for concurrent use.
type Reporter struct {
	w     io.Writer
	total int
	done  int
	start time.Time
	now   func() time.Time
}

// NewReporter creates a reporter for a batch of total jobs and emits the
// initial zero-progress render. Panics if total is less than one; an empty
// batch has nothing to report.
func NewReporter(w io.Writer, total int) *Reporter {
	if total < 1 {
		panic("total must be at least one")
	}
	r := &Reporter{w: w, total: total, now: time.Now}
	r.start = r.now()
	r.render()
	return r
}

// Advance records one completed job and re-renders the line. After the final
// job the line is terminated with a newline.
func (r *Reporter) Advance() {
	r.done++
	r.render()
}

func (r *Reporter) render() {
	filled := barWidth * r.done / r.total
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
	fmt.Fprintf(r.w, "\r[%s] %d/%d eta %s", bar, r.done, r.total, r.eta())
	if r.done == r.total {
		fmt.Fprintln(r.w)
	}
}

// eta extrapolates the remaining wall time from the mean pace of completed
// jobs. Before the first completion there is no pace to extrapolate from.
func (r *Reporter) eta() string {
	if r.done == 0 {
		return "--m--s"
	}
	elapsed := r.now().Sub(r.start)
	remaining := elapsed / time.Duration(r.done) * time.Duration(r.total-r.done)
	return fmt.Sprintf("%dm%02ds", int(remaining.Minutes()), int(remaining.Seconds())%60)
}
