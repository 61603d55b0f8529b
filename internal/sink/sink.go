// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Package sink persists job outcomes. Successful jobs become artifact files;
// failed jobs become log entries.
package sink

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"simdrive"
)

// A Sink routes each outcome to its terminal destination. It is driven from
// the scheduler's control loop and needs no internal synchronization.
type Sink struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Sink {
	return &Sink{log: log}
}

// Consume handles one outcome. The captured standard output of a successful
// job is written to the job's output path, replacing any previous artifact.
// A failed job writes nothing; any file already at its output path is left
// untouched, and the failing command line and captured standard error go to
// the log instead.
func (s *Sink) Consume(o simdrive.Outcome) {
	if !o.ExitOK {
		fields := []zap.Field{
			zap.String("command", strings.Join(o.Job.Command, " ")),
			zap.ByteString("stderr", o.Stderr),
		}
		if o.Err != nil {
			fields = append(fields, zap.Error(o.Err))
		}
		s.log.Warn("simulation failed", fields...)
		return
	}
	if err := os.WriteFile(o.Job.OutputPath, o.Stdout, 0o644); err != nil {
		s.log.Error("write artifact",
			zap.String("path", o.Job.OutputPath),
			zap.Error(err))
	}
}
