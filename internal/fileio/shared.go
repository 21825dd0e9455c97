// Package fileio parses uploaded spreadsheet bytes into tabular.Table.
// Every cell is kept as text — order exports carry phone numbers whose
// leading zeros a typed import would destroy.
package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"orderform-service/internal/tabular"
)

// ReadError — the upload could not be parsed in any supported format.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Filename, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ReadAny picks a parser by extension and returns the first sheet as a table,
// first row treated as headers. Both legacy .xls and current .xlsx order
// files are accepted, plus .csv with encoding auto-detection.
func ReadAny(r io.Reader, filename string) (*tabular.Table, error) {
	var (
		t   *tabular.Table
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		t, err = readXLSX(r)
	case ".xls":
		t, err = readXLS(r)
	case ".csv":
		t, err = readCSV(r)
	default:
		err = fmt.Errorf("unsupported file type")
	}
	if err != nil {
		return nil, &ReadError{Filename: filename, Err: err}
	}
	return t, nil
}

func normalizeCell(v string) string {
	return strings.TrimSpace(v)
}
