package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/zzenonn/z-bench/config"
	"github.com/zzenonn/z-bench/progress"
	"github.com/zzenonn/z-bench/result"
)

// Operation identifies which command template a run exercises.
type Operation string

const (
	OpPut    Operation = "PUT"
	OpGet    Operation = "GET"
	OpDelete Operation = "DELETE"
)

// ParseOperation maps a CLI operation name onto an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(s) {
	case "put":
		return OpPut, nil
	case "get":
		return OpGet, nil
	case "delete":
		return OpDelete, nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidConfiguration, s)
}

// Runner drives one operation over an ordered file manifest: a best-effort
// warmup phase followed by a measured phase that aborts on first failure.
// Exactly one command is in flight at a time; the optional rate limiter
// only paces launches and never reorders them.
type Runner struct {
	cfg     *config.Config
	limiter *rate.Limiter
	results []result.Result
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{cfg: cfg}
	if cfg.RateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return r
}

// Results returns the ordered log of every executed command, warmup and
// measured results interleaved in execution order.
func (r *Runner) Results() []result.Result {
	return r.results
}

// RunWarmup executes the operation against the first warmup-count manifest
// files, capped to the manifest length. Warmup primes caches and
// connections; its failures are recorded but never abort the run.
func (r *Runner) RunWarmup(ctx context.Context, op Operation, files []string) error {
	if r.cfg.Warmup <= 0 {
		return nil
	}

	tmpl, err := r.commandTemplate(op)
	if err != nil {
		return err
	}

	n := r.cfg.Warmup
	if n > len(files) {
		n = len(files)
	}
	for _, path := range files[:n] {
		res, err := r.execute(ctx, tmpl, op, path, true)
		if err != nil {
			return err
		}
		if !res.IsSuccess() {
			logrus.Warnf("Warmup %s failed for %s: %s", op, res.Filename, res.Error)
		}
	}
	return nil
}

// RunOperation executes the operation against every file in manifest order.
// Every launched command yields exactly one result. The first failure
// aborts the phase with ErrCommandExecution; no further file is attempted
// and every result up to and including the failing one stays in the log.
func (r *Runner) RunOperation(ctx context.Context, op Operation, files []string) error {
	tmpl, err := r.commandTemplate(op)
	if err != nil {
		return err
	}

	var bar *progress.ProgressBar
	if !r.cfg.NoLog {
		bar = progress.NewProgressBar(int64(len(files))).SetCaption(string(op))
		defer bar.Finish()
	}

	for _, path := range files {
		res, err := r.execute(ctx, tmpl, op, path, false)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
		if !res.IsSuccess() {
			return fmt.Errorf("%w: %s", ErrCommandExecution, res.Error)
		}
	}
	return nil
}

// execute runs one command and appends its record to the result log. The
// returned error covers only interruption (context or limiter); command
// failures are reported through the result itself.
func (r *Runner) execute(ctx context.Context, tmpl string, op Operation, path string, warmup bool) (result.Result, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return result.Result{}, err
		}
	}

	ok, errText, latency := ExecuteCommand(ctx, RenderCommand(tmpl, path))

	res := result.Result{
		TimestampNS: time.Now().UnixNano(),
		Operation:   string(op),
		Filename:    filepath.Base(path),
		SizeBytes:   fileSizeBytes(path),
		LatencyNS:   latency.Nanoseconds(),
		Status:      result.StatusSuccess,
		Warmup:      warmup,
	}
	if !ok {
		res.Status = result.StatusFail
		res.Error = errText
	}

	r.results = append(r.results, res)
	return res, nil
}

// commandTemplate returns the configured template for the operation,
// checked before any command is issued.
func (r *Runner) commandTemplate(op Operation) (string, error) {
	var tmpl string
	switch op {
	case OpPut:
		tmpl = r.cfg.PutCmd
	case OpGet:
		tmpl = r.cfg.GetCmd
	case OpDelete:
		tmpl = r.cfg.DelCmd
	}
	if tmpl == "" {
		return "", fmt.Errorf("%w: no %s command provided", ErrMissingCommandTemplate, op)
	}
	return tmpl, nil
}

// fileSizeBytes is best-effort: a file a remote DELETE already removed
// locally still yields a record, with size zero.
func fileSizeBytes(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
