// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Command simdrive runs the simulator over every heap dump beneath a corpus
// root directory:
//
//	simdrive <heapdump-root>
//
// The simulator invocation profile and the worker bound are taken from the
// environment; see package simdrive/internal/config. Individual job failures
// are logged and do not affect the exit status, which is zero whenever the
// full job set was processed.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"simdrive"
	"simdrive/internal/config"
	"simdrive/internal/corpus"
	"simdrive/internal/progress"
	"simdrive/internal/sink"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <heapdump-root>\n", os.Args[0])
		os.Exit(2)
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if err := run(os.Args[1], log); err != nil {
		log.Fatal("simdrive", zap.Error(err))
	}
}

func run(root string, log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	jobs, err := corpus.Enumerate(root, cfg.Profile)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		log.Info("no heap dumps found", zap.String("root", root))
		return nil
	}
	log.Info("starting batch",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", cfg.Workers))

	reporter := progress.NewReporter(os.Stdout, len(jobs))
	results := sink.New(log)
	scheduler := simdrive.NewScheduler(jobs, cfg.Workers)
	summary, err := scheduler.Run(context.Background(), func(o simdrive.Outcome) {
		results.Consume(o)
		reporter.Advance()
	})
	if err != nil {
		return err
	}
	log.Info("batch complete",
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Elapsed))
	return nil
}
