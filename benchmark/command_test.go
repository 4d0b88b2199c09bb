package benchmark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderCommand(t *testing.T) {
	got := RenderCommand("cp {file} /dst/{file}.bak", "/tmp/x.bin")
	assert.Equal(t, "cp /tmp/x.bin /dst//tmp/x.bin.bak", got)

	// No placeholder means no substitution of any kind.
	assert.Equal(t, "ls -l", RenderCommand("ls -l", "/tmp/x.bin"))
}

func TestExecuteCommand_Success(t *testing.T) {
	ok, errText, latency := ExecuteCommand(context.Background(), "true")
	assert.True(t, ok)
	assert.Empty(t, errText)
	assert.Greater(t, latency, time.Duration(0))
}

func TestExecuteCommand_FailureCapturesStderr(t *testing.T) {
	ok, errText, latency := ExecuteCommand(context.Background(), "echo boom >&2; exit 3")
	assert.False(t, ok)
	assert.Equal(t, "boom", errText)
	assert.Greater(t, latency, time.Duration(0))
}

func TestExecuteCommand_FailureWithoutStderr(t *testing.T) {
	ok, errText, _ := ExecuteCommand(context.Background(), "exit 1")
	assert.False(t, ok)
	assert.NotEmpty(t, errText)
}
