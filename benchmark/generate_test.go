package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzenonn/z-bench/config"
)

func genConfig(dir, fileSize, totalSize string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.OutputDir = dir
	cfg.FileSize = fileSize
	cfg.TotalSize = totalSize
	cfg.NoLog = true
	return cfg
}

func TestGenerate_FileCountAndSizes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := NewGenerator(genConfig(dir, "1KB", "4KB")).Generate()
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for i, path := range paths {
		assert.Equal(t, fmt.Sprintf("file_%04d.bin", i+1), filepath.Base(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(1024), info.Size())
	}
}

func TestGenerate_FloorDivisionDropsRemainder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	// 4MiB / 1.5MiB floors to 2 files; per-file sizes stay exact.
	paths, err := NewGenerator(genConfig(dir, "1536KB", "4MB")).Generate()
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(1536*1024), info.Size())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")

	pathsA, err := NewGenerator(genConfig(dirA, "300KB", "900KB")).Generate()
	require.NoError(t, err)
	pathsB, err := NewGenerator(genConfig(dirB, "300KB", "900KB")).Generate()
	require.NoError(t, err)
	require.Len(t, pathsB, len(pathsA))

	for i := range pathsA {
		assert.Equal(t, filepath.Base(pathsA[i]), filepath.Base(pathsB[i]))
		a, err := os.ReadFile(pathsA[i])
		require.NoError(t, err)
		b, err := os.ReadFile(pathsB[i])
		require.NoError(t, err)
		assert.Equal(t, a, b, "file %d differs between runs", i+1)
	}
}

func TestGenerate_FileLargerThanTotal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	_, err := NewGenerator(genConfig(dir, "10MB", "1MB")).Generate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGenerate_MissingParameters(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NoLog = true

	_, err := NewGenerator(cfg).Generate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGenerate_InvalidSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	_, err := NewGenerator(genConfig(dir, "bogus", "1MB")).Generate()
	assert.ErrorIs(t, err, ErrInvalidSizeFormat)
}

func TestGenerate_InsufficientDiskSpace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	// 1PiB will not fit anywhere a test runs.
	_, err := NewGenerator(genConfig(dir, "1024TB", "1024TB")).Generate()
	assert.ErrorIs(t, err, ErrInsufficientDiskSpace)
}
