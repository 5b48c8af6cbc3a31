// SPDX-License-Identifier: EPL-2.0

// Package table records structured rows into CSV files.
//
// A Recorder is constructed with the column headers; the header row is
// written immediately with a leading "timestamp" column, and every Write
// prepends the current time in RFC 3339 format:
//
//	rec, err := table.New("metrics.csv", "reward", "loss")
//	if err != nil {
//	    // Handle error
//	}
//	defer rec.Close()
//
//	rec.Write([]string{"0.93", "0.07"})
//
// Row arity is validated on every write against the configured headers.
// The recorder follows the module-wide lifecycle contract: idempotent
// Close, recorder.ErrClosed after closing, and a best-effort runtime
// cleanup for abandoned instances.
package table
