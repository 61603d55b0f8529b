// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

// Package config holds the driver configuration: the simulator invocation
// profile and the worker-count bound. Both come from the environment so that
// the command-line surface stays a single positional argument.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// A Profile describes how to invoke the simulator for each heap dump. The
// zero value is not useful; start from [DefaultProfile] and override fields
// from a YAML profile file as needed.
type Profile struct {
	Executable   string   `yaml:"executable"`
	ObjectModel  string   `yaml:"object_model"`
	Command      string   `yaml:"command"`
	Parallelism  int      `yaml:"parallelism"`
	Algorithm    string   `yaml:"algorithm"`
	Features     []string `yaml:"features"`
	DumpSuffix   string   `yaml:"dump_suffix"`
	OutputSuffix string   `yaml:"output_suffix"`
}

// DefaultProfile is the paper configuration: the release simulator binary
// run over OpenJDK-model dumps with the NMPGC algorithm at parallelism 8,
// consuming .binpb.zst dumps and naming artifacts <benchmark>.<gc>.log.
func DefaultProfile() Profile {
	return Profile{
		Executable:   "./target/release/hwgc_soft",
		ObjectModel:  "OpenJDK",
		Command:      "simulate",
		Parallelism:  8,
		Algorithm:    "NMPGC",
		DumpSuffix:   ".binpb.zst",
		OutputSuffix: "log",
	}
}

// Args builds the full simulator argument vector for one dump file: the
// executable, the dump path as the sole positional argument, then the
// object-model, subcommand, parallelism, and algorithm flags. Parallelism and
// Algorithm are omitted when unset, since not every simulator subcommand
// accepts them. Features are appended verbatim.
func (p Profile) Args(dumpPath string) []string {
	args := []string{p.Executable, dumpPath, "-o", p.ObjectModel, p.Command}
	if p.Parallelism > 0 {
		args = append(args, "-p", strconv.Itoa(p.Parallelism))
	}
	if p.Algorithm != "" {
		args = append(args, "-a", p.Algorithm)
	}
	return append(args, p.Features...)
}

// Config is the full driver configuration.
type Config struct {
	Profile Profile
	Workers int
}

// Load builds the configuration from the environment. SIMDRIVE_PROFILE names
// an optional YAML file whose fields override the default profile;
// SIMDRIVE_WORKERS overrides the worker bound, which defaults to half the
// available processing units with a minimum of one.
func Load() (Config, error) {
	cfg := Config{
		Profile: DefaultProfile(),
		Workers: defaultWorkers(),
	}
	if path := os.Getenv("SIMDRIVE_PROFILE"); path != "" {
		if err := loadProfile(path, &cfg.Profile); err != nil {
			return cfg, err
		}
	}
	if v := os.Getenv("SIMDRIVE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid SIMDRIVE_WORKERS %q: want a positive integer", v)
		}
		cfg.Workers = n
	}
	return cfg, nil
}

func defaultWorkers() int {
	return max(1, runtime.NumCPU()/2)
}

// loadProfile overlays the YAML file at path onto p. Fields absent from the
// file keep their existing values.
func loadProfile(path string, p *Profile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}
	return nil
}
