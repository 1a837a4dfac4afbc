package source

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// NewShiftJISCSV wraps raw Shift_JIS bytes in a CSV reader yielding UTF-8
// fields. Trailing column counts differ between editions of the upstream
// files, so records are not length-checked here; callers validate the
// columns they index.
func NewShiftJISCSV(r io.Reader) *csv.Reader {
	reader := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	reader.FieldsPerRecord = -1
	return reader
}
