// Legacy .xls invoice files: the courier's export tool still emits BIFF.
// We fix the table width ourselves and read every cell up to it instead of
// trusting Row.LastCol().
package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"

	"orderform-service/internal/tabular"
)

// computeMaxCols probes a bounded column range for non-empty cells; the
// header row and the row under it are usually the widest.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if v := normalizeCell(row.Col(j)); v != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader) (*tabular.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Korean courier exports are usually euc-kr, occasionally utf-8.
	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"euc-kr", "utf-8", "cp949"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return tabular.New(nil), nil
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return tabular.FromRows(rows, 1), nil
}
