package benchmark

import "errors"

// Configuration and precondition errors are detected before any timed work
// begins. ErrCommandExecution aborts the measured phase on first failure.
var (
	ErrInvalidSizeFormat      = errors.New("invalid size format")
	ErrInsufficientDiskSpace  = errors.New("insufficient disk space")
	ErrInvalidConfiguration   = errors.New("invalid configuration")
	ErrMissingCommandTemplate = errors.New("missing command template")
	ErrCommandExecution       = errors.New("command execution failed")
	ErrNoInputFiles           = errors.New("no input files")
)
