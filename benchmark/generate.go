package benchmark

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zzenonn/z-bench/config"
	"github.com/zzenonn/z-bench/progress"
)

// generateSeed fixes the random stream so that two generation runs with
// identical parameters produce byte-identical datasets.
const generateSeed = 42

// chunkSize is how many random bytes are drawn per write.
const chunkSize = 1 << 20

// Generator produces the deterministic dataset a benchmark runs against.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate writes total/file (floor) files of exactly the configured
// per-file size into the output directory and returns their paths in
// generation order. One seeded random stream is shared across all files in
// the run and advanced strictly in file order, so file N's content depends
// on the state left behind by files 1..N-1.
func (g *Generator) Generate() ([]string, error) {
	if g.cfg.OutputDir == "" || g.cfg.FileSize == "" || g.cfg.TotalSize == "" {
		return nil, fmt.Errorf("%w: output dir, file size and total size are required", ErrInvalidConfiguration)
	}

	fileSize, err := ParseSize(g.cfg.FileSize)
	if err != nil {
		return nil, err
	}
	totalSize, err := ParseSize(g.cfg.TotalSize)
	if err != nil {
		return nil, err
	}
	if fileSize <= 0 {
		return nil, fmt.Errorf("%w: file size must be positive, got %s", ErrInvalidConfiguration, g.cfg.FileSize)
	}

	numFiles := totalSize / fileSize
	if numFiles == 0 {
		return nil, fmt.Errorf("%w: file size (%s) is larger than total size (%s)",
			ErrInvalidConfiguration, g.cfg.FileSize, g.cfg.TotalSize)
	}

	// The check is advisory-sized: it ignores filesystem overhead.
	free, err := freeDiskSpace(filepath.Dir(g.cfg.OutputDir))
	if err != nil {
		return nil, fmt.Errorf("checking free disk space: %w", err)
	}
	if free < uint64(totalSize) {
		return nil, fmt.Errorf("%w: required %d bytes, available %d bytes",
			ErrInsufficientDiskSpace, totalSize, free)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	logrus.Infof("Generating %d files of %d bytes each...", numFiles, fileSize)

	var bar *progress.ProgressBar
	if !g.cfg.NoLog {
		bar = progress.NewProgressBar(numFiles).SetCaption("Generating")
	}

	rng := rand.New(rand.NewSource(generateSeed))
	buf := make([]byte, chunkSize)

	paths := make([]string, 0, numFiles)
	var written int64
	for i := int64(1); i <= numFiles; i++ {
		path := filepath.Join(g.cfg.OutputDir, fmt.Sprintf("file_%04d.bin", i))
		n, err := writeRandomFile(path, rng, buf, fileSize)
		written += n
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	logrus.Infof("Generated %d files, total size: %d bytes", len(paths), written)
	return paths, nil
}

// writeRandomFile fills one file from the shared random stream in chunks
// capped by the remaining byte count.
func writeRandomFile(path string, rng *rand.Rand, buf []byte, size int64) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	var written int64
	for remaining := size; remaining > 0; {
		chunk := buf
		if remaining < int64(len(buf)) {
			chunk = buf[:remaining]
		}
		rng.Read(chunk)
		n, err := f.Write(chunk)
		written += int64(n)
		if err != nil {
			f.Close()
			return written, err
		}
		remaining -= int64(n)
	}

	if err := f.Close(); err != nil {
		return written, err
	}
	return written, nil
}
