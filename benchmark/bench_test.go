package benchmark

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzenonn/z-bench/config"
)

func TestBench_EndToEnd(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	outFile := filepath.Join(t.TempDir(), "results.csv")

	cfg := config.DefaultConfig()
	cfg.OutputDir = dataDir
	cfg.InputDir = dataDir
	cfg.FileSize = "1KB"
	cfg.TotalSize = "4KB"
	cfg.Warmup = 1
	cfg.GetCmd = "true"
	cfg.OutFile = outFile

	b := New(cfg)

	paths, err := b.RunGenerate()
	require.NoError(t, err)
	require.Len(t, paths, 4)

	require.NoError(t, b.RunBenchmark(context.Background(), OpGet))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header + 1 warmup + 4 measured.
	require.Len(t, records, 6)
	assert.Equal(t, []string{
		"timestamp_ns", "operation", "filename", "size_bytes",
		"latency_ns", "status", "error", "warmup",
	}, records[0])

	for i, rec := range records[1:] {
		assert.Equal(t, "GET", rec[1])
		assert.Equal(t, "1024", rec[3])
		assert.Equal(t, "success", rec[5])
		assert.Empty(t, rec[6])

		latency, err := strconv.ParseInt(rec[4], 10, 64)
		require.NoError(t, err)
		assert.Greater(t, latency, int64(0))

		wantWarmup := strconv.FormatBool(i == 0)
		assert.Equal(t, wantWarmup, rec[7])
	}
}

func TestBench_ManifestIsSorted(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "order.log")

	for _, name := range []string{"c.bin", "a.bin", "b.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Warmup = 0
	cfg.OutFile = ""
	cfg.NoLog = true
	cfg.GetCmd = "echo {file} >> " + logPath

	require.NoError(t, New(cfg).RunBenchmark(context.Background(), OpGet))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, filepath.Join(dir, "a.bin"), lines[0])
	assert.Equal(t, filepath.Join(dir, "b.bin"), lines[1])
	assert.Equal(t, filepath.Join(dir, "c.bin"), lines[2])
}

func TestBench_AbortedRunStillFlushesResults(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "results.jsonl")

	files := makeFiles(t, dir, 3)
	require.NoError(t, os.WriteFile(files[0]+".allow", nil, 0644))
	require.NoError(t, os.WriteFile(files[2]+".allow", nil, 0644))

	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Warmup = 0
	cfg.OutFile = outFile
	cfg.GetCmd = "test -f {file}.allow"

	err := New(cfg).RunBenchmark(context.Background(), OpGet)
	require.ErrorIs(t, err, ErrCommandExecution)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}

func TestBench_NoInputFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.NoLog = true
	cfg.GetCmd = "true"

	err := New(cfg).RunBenchmark(context.Background(), OpGet)
	assert.ErrorIs(t, err, ErrNoInputFiles)
}

func TestBench_MissingInputDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(t.TempDir(), "nope")
	cfg.NoLog = true
	cfg.GetCmd = "true"

	err := New(cfg).RunBenchmark(context.Background(), OpGet)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBench_FullCycleAcknowledgesOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NoLog = true

	assert.NoError(t, New(cfg).RunFullCycle(context.Background()))
}
