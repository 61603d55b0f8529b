// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"simdrive/internal/config"
)

func TestDefaultProfileArgs(t *testing.T) {
	chk := require.New(t)
	args := config.DefaultProfile().Args("fop/heapdump.2.binpb.zst")
	chk.Equal([]string{
		"./target/release/hwgc_soft", "fop/heapdump.2.binpb.zst",
		"-o", "OpenJDK", "simulate", "-p", "8", "-a", "NMPGC",
	}, args)
}

func TestProfileArgsOmitsUnsetFlags(t *testing.T) {
	chk := require.New(t)
	p := config.DefaultProfile()
	p.Command = "trace"
	p.Parallelism = 0
	p.Algorithm = ""
	p.Features = []string{"-t", "NodeObjref"}
	chk.Equal([]string{
		"./target/release/hwgc_soft", "dump.binpb.zst",
		"-o", "OpenJDK", "trace", "-t", "NodeObjref",
	}, p.Args("dump.binpb.zst"))
}

func TestLoadDefaults(t *testing.T) {
	chk := require.New(t)
	t.Setenv("SIMDRIVE_PROFILE", "")
	t.Setenv("SIMDRIVE_WORKERS", "")
	cfg, err := config.Load()
	chk.NoError(err)
	chk.Equal(config.DefaultProfile(), cfg.Profile)
	chk.GreaterOrEqual(cfg.Workers, 1)
}

func TestLoadProfileOverrides(t *testing.T) {
	chk := require.New(t)
	path := filepath.Join(t.TempDir(), "profile.yaml")
	chk.NoError(os.WriteFile(path, []byte(
		"executable: /opt/builds/pgo\n"+
			"algorithm: IdealTraceUtilization\n"+
			"parallelism: 32\n"+
			"output_suffix: parquet\n"), 0o644))
	t.Setenv("SIMDRIVE_PROFILE", path)
	t.Setenv("SIMDRIVE_WORKERS", "")

	cfg, err := config.Load()
	chk.NoError(err)
	chk.Equal("/opt/builds/pgo", cfg.Profile.Executable)
	chk.Equal("IdealTraceUtilization", cfg.Profile.Algorithm)
	chk.Equal(32, cfg.Profile.Parallelism)
	chk.Equal("parquet", cfg.Profile.OutputSuffix)
	// Fields absent from the file keep their defaults.
	chk.Equal("OpenJDK", cfg.Profile.ObjectModel)
	chk.Equal(".binpb.zst", cfg.Profile.DumpSuffix)
}

func TestLoadMissingProfileFile(t *testing.T) {
	chk := require.New(t)
	t.Setenv("SIMDRIVE_PROFILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := config.Load()
	chk.Error(err)
}

func TestLoadWorkers(t *testing.T) {
	chk := require.New(t)
	t.Setenv("SIMDRIVE_PROFILE", "")

	t.Setenv("SIMDRIVE_WORKERS", "3")
	cfg, err := config.Load()
	chk.NoError(err)
	chk.Equal(3, cfg.Workers)

	for _, bad := range []string{"0", "-2", "many"} {
		t.Setenv("SIMDRIVE_WORKERS", bad)
		_, err := config.Load()
		chk.Error(err, "SIMDRIVE_WORKERS=%s must be rejected", bad)
	}
}
