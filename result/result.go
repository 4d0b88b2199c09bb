// Package result defines the record produced for every executed command.
package result

// Status reports whether a command invocation succeeded.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFail    Status = "fail"
)

// Result is one benchmark record. The runner creates it immediately after
// the command process exits and it is never mutated afterwards.
type Result struct {
	TimestampNS int64  `json:"timestamp_ns"`
	Operation   string `json:"operation"`
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	LatencyNS   int64  `json:"latency_ns"`
	Status      Status `json:"status"`
	Error       string `json:"error"`
	Warmup      bool   `json:"warmup"`
}

// IsSuccess returns true if the command exited with status zero.
func (r Result) IsSuccess() bool {
	return r.Status == StatusSuccess
}
