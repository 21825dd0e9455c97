// Package export serializes result tables for download: delimited text with
// selectable separator/encoding, xlsx workbooks, and the batch ZIP archive.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"orderform-service/internal/tabular"
)

// Columns whose values spreadsheet viewers would "helpfully" reparse as
// numbers, stripping leading zeros.
var phoneLike = regexp.MustCompile(`전화번호|연락처|휴대폰`)

// GuardExcelText wraps a value as ="value" so Excel keeps it textual when
// opening the CSV. Already-guarded and empty values pass through.
func GuardExcelText(s string) string {
	if s == "" || strings.HasPrefix(s, `="`) {
		return s
	}
	return `="` + s + `"`
}

type CSVOptions struct {
	Separator rune   // ',', ';', '\t' or '|'
	Encoding  string // utf-8-sig, utf-8, cp949, euc-kr
}

func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Separator: ',', Encoding: "utf-8-sig"}
}

// SeparatorByName maps the operator-facing separator names to runes.
func SeparatorByName(name string) (rune, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "comma", ",":
		return ',', true
	case "semicolon", ";":
		return ';', true
	case "tab", "\t":
		return '\t', true
	case "pipe", "|":
		return '|', true
	}
	return 0, false
}

// WriteCSV writes the table with phone-like columns text-guarded.
// CP949 and EUC-KR both encode through x/text's EUC-KR tables.
func WriteCSV(w io.Writer, t *tabular.Table, opt CSVOptions) error {
	var out io.Writer = w
	switch strings.ToLower(opt.Encoding) {
	case "", "utf-8-sig":
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return err
		}
	case "utf-8":
	case "cp949", "euc-kr":
		out = transform.NewWriter(w, korean.EUCKR.NewEncoder())
	default:
		return fmt.Errorf("unsupported csv encoding: %s", opt.Encoding)
	}

	guard := make([]bool, t.Width())
	for i, h := range t.Headers {
		guard[i] = phoneLike.MatchString(h)
	}

	cw := csv.NewWriter(out)
	if opt.Separator != 0 {
		cw.Comma = opt.Separator
	}
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	rec := make([]string, t.Width())
	for r := 0; r < t.Len(); r++ {
		for c := 0; c < t.Width(); c++ {
			v := t.Cell(r, c)
			if guard[c] {
				v = GuardExcelText(v)
			}
			rec[c] = v
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if tw, ok := out.(*transform.Writer); ok {
		return tw.Close()
	}
	return nil
}
