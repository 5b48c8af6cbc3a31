// SPDX-License-Identifier: EPL-2.0

package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pamiq/recorder-go"
)

// Recorder appends rows to a CSV file. The header row is written at
// construction with a leading "timestamp" column; every written row gets
// the current time prepended, so callers supply exactly one value per
// configured header.
//
// Recorder performs no internal locking; a single instance must not be
// used from multiple goroutines without external synchronization.
type Recorder struct {
	path    string
	headers []string

	f       *os.File
	w       *csv.Writer
	closed  bool
	cleanup runtime.Cleanup

	// now is replaceable in tests.
	now func() time.Time
}

var _ recorder.Recorder[[]string] = (*Recorder)(nil)

// New opens a CSV recorder at path and writes the header row. At least
// one header is required.
func New(path string, headers ...string) (*Recorder, error) {
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w := csv.NewWriter(f)

	row := append([]string{"timestamp"}, headers...)
	if err := w.Write(row); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write header: %w", err)
	}

	r := &Recorder{
		path:    path,
		headers: append([]string(nil), headers...),
		f:       f,
		w:       w,
		now:     time.Now,
	}

	// Last-resort finalization for abandoned recorders.
	r.cleanup = runtime.AddCleanup(r, func(h closeHandle) {
		h.w.Flush()
		h.f.Close()
	}, closeHandle{w: w, f: f})

	return r, nil
}

type closeHandle struct {
	w *csv.Writer
	f *os.File
}

// Path returns the destination file path.
func (r *Recorder) Path() string { return r.path }

// Headers returns the configured column headers, without the implicit
// timestamp column.
func (r *Recorder) Headers() []string {
	return append([]string(nil), r.headers...)
}

// Write appends one row, prepending an RFC 3339 timestamp. The row must
// carry exactly one value per configured header; arity failures are
// side-effect free and leave the recorder usable.
func (r *Recorder) Write(row []string) error {
	if r.closed {
		return recorder.ErrClosed
	}

	if len(row) != len(r.headers) {
		return &RowLengthError{Want: len(r.headers), Got: len(row)}
	}

	out := make([]string, 0, len(row)+1)
	out = append(out, r.now().Format(time.RFC3339Nano))
	out = append(out, row...)

	if err := r.w.Write(out); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	return nil
}

// Close flushes buffered rows and closes the file. Only the first call
// performs work; later calls return nil.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.cleanup.Stop()

	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.f.Close()
		return fmt.Errorf("flush rows: %w", err)
	}

	if err := r.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
