// Package report prints post-run benchmark summaries.
package report

import (
	"fmt"
	"time"

	"github.com/zzenonn/z-bench/result"
)

// DisplayResults shows the summary of a completed measured phase: counts,
// wall time and throughput. Totals only; the raw latency series lives in
// the result sink.
func DisplayResults(operation string, results []result.Result, duration time.Duration) {
	var processed, failed int
	var totalData int64
	for _, res := range results {
		if res.Warmup {
			continue
		}
		processed++
		if !res.IsSuccess() {
			failed++
			continue
		}
		totalData += res.SizeBytes
	}

	throughput := float64(totalData) / duration.Seconds() / (1024 * 1024) // MiB/s
	objectThroughput := float64(processed) / duration.Seconds()

	fmt.Printf("\n%s Results:\n", operation)
	fmt.Printf("Duration: %s\n", duration)
	fmt.Printf("Total Objects Processed: %d\n", processed)
	if failed > 0 {
		fmt.Printf("Failed Operations: %d\n", failed)
	}
	fmt.Printf("Data Throughput: %.2f MiB/s\n", throughput)
	fmt.Printf("Object Throughput: %.2f objects/s\n", objectThroughput)
}
