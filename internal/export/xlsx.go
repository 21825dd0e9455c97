package export

import (
	"strconv"

	excelize "github.com/xuri/excelize/v2"

	"orderform-service/internal/tabular"
)

// XLSXBytes renders the table as a single-sheet workbook. sheetName replaces
// the default sheet name when non-empty (the storefront upload form requires
// "발송처리"). Columns listed in numeric are written as numbers when their
// cells parse; everything else stays text.
func XLSXBytes(t *tabular.Table, sheetName string, numeric map[string]bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheetName != "" {
		if err := f.SetSheetName(sheet, sheetName); err != nil {
			return nil, err
		}
		sheet = sheetName
	}

	for c, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r := 0; r < t.Len(); r++ {
		for c := 0; c < t.Width(); c++ {
			v := t.Cell(r, c)
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if numeric != nil && numeric[t.Headers[c]] {
				if fv, perr := strconv.ParseFloat(v, 64); perr == nil {
					if err := f.SetCellValue(sheet, cell, fv); err != nil {
						return nil, err
					}
					continue
				}
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
