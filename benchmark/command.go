package benchmark

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// FilePlaceholder is the single substitution token recognized in command
// templates. No other templating is performed.
const FilePlaceholder = "{file}"

// RenderCommand substitutes the target file path into a command template.
func RenderCommand(template, path string) string {
	return strings.ReplaceAll(template, FilePlaceholder, path)
}

// ExecuteCommand runs one rendered shell command and measures its wall-clock
// latency from just before spawn until process exit, whatever the exit
// status. Nonzero exits and launch failures are normalized into the returned
// tuple; the error text is the trimmed stderr, falling back to the process
// error when stderr is empty.
func ExecuteCommand(ctx context.Context, command string) (ok bool, errText string, latency time.Duration) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	latency = time.Since(start)

	if err == nil {
		return true, "", latency
	}

	errText = strings.TrimSpace(stderr.String())
	if errText == "" {
		errText = err.Error()
	}
	return false, errText, latency
}
