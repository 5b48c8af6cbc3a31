// SPDX-License-Identifier: EPL-2.0

package recorder

// Recorder is the lifecycle contract shared by every file-backed recorder
// in this module. A recorder owns exactly one destination file once
// constructed and moves from open to closed exactly once.
//
// Write appends data to the output and fails with ErrClosed once the
// recorder has been closed. Close releases the underlying file or encoder
// handle; it is idempotent, only the first call performs real work and
// later calls return nil.
//
// Recorders perform no internal locking. A single instance must not be
// shared between goroutines without external synchronization.
type Recorder[T any] interface {
	// Write appends data to the output file. Data written before a
	// successful Close is durable once Close returns.
	Write(data T) error

	// Close flushes and releases the underlying resource. Safe to call
	// multiple times.
	Close() error
}

// Use runs fn with r and closes r on every exit path, including an error
// return or a panic inside fn. The error from fn takes precedence; the
// close error is returned only when fn succeeded.
//
// This is the preferred way to scope a recorder's lifetime:
//
//	rec, err := audio.New("take.wav", 44100, 2)
//	if err != nil {
//	    return err
//	}
//	err = recorder.Use(rec, func(r recorder.Recorder[audio.Buffer]) error {
//	    return r.Write(audio.Mono(samples))
//	})
func Use[T any](r Recorder[T], fn func(Recorder[T]) error) (err error) {
	defer func() {
		cerr := r.Close()
		if err == nil {
			err = cerr
		}
	}()

	return fn(r)
}
