// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Package corpus derives simulation jobs from an on-disk heap-dump corpus
// laid out as <root>/<benchmark>/<prefix>.<gcNumber>.<extension...>.
package corpus

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/addrummond/heap"

	"simdrive"
	"simdrive/internal/config"
)

// Enumerate walks the corpus root and emits one job per heap dump found in
// its immediate subdirectories. Files without the profile's dump suffix or a
// numeric GC segment, and non-directory entries at the root, are skipped.
// Jobs are emitted ordered by benchmark name and then numeric GC number, so
// a given tree always yields the same job sequence.
//
// A missing or non-directory root is a configuration error. An empty corpus
// is not: Enumerate returns an empty job set and a nil error.
func Enumerate(root string, profile config.Profile) ([]simdrive.Job, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("heap-dump root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("heap-dump root %s is not a directory", root)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("heap-dump root: %w", err)
	}

	var pending heap.Heap[dump, heap.Min]
	count := 0
	for _, bench := range entries {
		if !bench.IsDir() {
			continue
		}
		dir := filepath.Join(root, bench.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", bench.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			gc, ok := gcNumber(f.Name(), profile.DumpSuffix)
			if !ok {
				continue
			}
			heap.PushOrderable(&pending, dump{
				benchmark: bench.Name(),
				gc:        gc,
				path:      filepath.Join(dir, f.Name()),
			})
			count++
		}
	}

	jobs := make([]simdrive.Job, 0, count)
	for {
		d, ok := heap.PopOrderable(&pending)
		if !ok {
			break
		}
		jobs = append(jobs, simdrive.Job{
			Command:    profile.Args(d.path),
			OutputPath: fmt.Sprintf("%s.%d.%s", d.benchmark, d.gc, profile.OutputSuffix),
		})
	}
	return jobs, nil
}

// gcNumber extracts the GC sequence number from a dump file name of the form
// <prefix>.<gcNumber>.<extension...>, e.g. heapdump.2.binpb.zst. Names
// without the expected suffix, with fewer than three dot-separated segments,
// or with a non-numeric second segment do not name heap dumps.
func gcNumber(name, suffix string) (int, bool) {
	if !strings.HasSuffix(name, suffix) {
		return 0, false
	}
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return 0, false
	}
	gc, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return gc, true
}

type dump struct {
	benchmark string
	gc        int
	path      string
}

func (a *dump) Cmp(b *dump) int {
	if c := cmp.Compare(a.benchmark, b.benchmark); c != 0 {
		return c
	}
	return cmp.Compare(a.gc, b.gc)
}
