package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"orderform-service/internal/tabular"
)

func readXLSX(r io.Reader) (*tabular.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// GetRows returns formatted cell text, which keeps "010..." intact for
	// text-formatted cells; numeric-formatted cells come back as their
	// display string, which is what the converters expect.
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return tabular.FromRows(rows, 1), nil
}
