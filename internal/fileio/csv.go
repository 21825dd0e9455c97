package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"orderform-service/internal/tabular"
)

// readCSV auto-detects the encoding (UTF-8 and EUC-KR/CP949 out of the box)
// and converts to UTF-8 before parsing.
func readCSV(r io.Reader) (*tabular.Table, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "euc-kr", "cp949", "windows-949", "ks_c_5601-1987":
		dec = transform.NewReader(br, korean.EUCKR.NewDecoder())
	default:
		// assume UTF-8; a leading BOM is stripped below
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	if len(rows) == 0 {
		return tabular.New(nil), nil
	}
	return tabular.FromRows(rows, 1), nil
}
