// Package output persists benchmark results to a CSV or JSON-Lines sink.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zzenonn/z-bench/result"
)

// flushThreshold is the buffered record count that triggers an automatic
// flush.
const flushThreshold = 100

// csvHeader is the fixed CSV column order.
var csvHeader = []string{
	"timestamp_ns", "operation", "filename", "size_bytes",
	"latency_ns", "status", "error", "warmup",
}

// Writer buffers benchmark results and appends them to a durable sink
// without reordering them. The sink format is selected by the output path's
// extension: ".csv" (case-insensitive) selects CSV, anything else one JSON
// object per line. The writer never truncates or rewrites prior content.
type Writer struct {
	path  string
	noLog bool
	buf   []result.Result
}

// NewWriter creates a Writer for the given sink path. When noLog is set
// every write and flush is a no-op, so timing runs pay no I/O cost.
func NewWriter(path string, noLog bool) *Writer {
	return &Writer{path: path, noLog: noLog}
}

// Write buffers one result, flushing automatically once the buffer holds
// 100 records. The triggering record is included in that flush.
func (w *Writer) Write(res result.Result) error {
	if w.noLog {
		return nil
	}
	w.buf = append(w.buf, res)
	if len(w.buf) >= flushThreshold {
		return w.Flush()
	}
	return nil
}

// Flush appends all buffered records to the sink. Callers must invoke it
// once at end of run to persist any remainder.
func (w *Writer) Flush() error {
	if w.noLog || len(w.buf) == 0 {
		return nil
	}

	var err error
	if strings.EqualFold(filepath.Ext(w.path), ".csv") {
		err = w.flushCSV()
	} else {
		err = w.flushJSONL()
	}
	if err != nil {
		return err
	}

	w.buf = w.buf[:0]
	return nil
}

// flushCSV appends records in the fixed column order, emitting the header
// row only when the target file did not exist at the moment of this flush.
func (w *Writer) flushCSV() error {
	_, statErr := os.Stat(w.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := w.openAppend()
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if writeHeader {
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
	}
	for _, res := range w.buf {
		record := []string{
			strconv.FormatInt(res.TimestampNS, 10),
			res.Operation,
			res.Filename,
			strconv.FormatInt(res.SizeBytes, 10),
			strconv.FormatInt(res.LatencyNS, 10),
			string(res.Status),
			res.Error,
			strconv.FormatBool(res.Warmup),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// flushJSONL appends one compact JSON object per record.
func (w *Writer) flushJSONL() error {
	f, err := w.openAppend()
	if err != nil {
		return err
	}
	defer f.Close()

	for _, res := range w.buf {
		line, err := json.Marshal(res)
		if err != nil {
			return err
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) openAppend() (*os.File, error) {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening output file: %w", err)
	}
	return f, nil
}
