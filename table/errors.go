// SPDX-License-Identifier: EPL-2.0

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeaders rejects construction without any column headers.
	ErrNoHeaders = errors.New("at least one column header is required")
)

// RowLengthError reports a row whose value count disagrees with the
// configured headers. The write is rejected before touching the file;
// the recorder stays usable.
type RowLengthError struct {
	Want int
	Got  int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("expected %d values per row, got %d", e.Want, e.Got)
}
