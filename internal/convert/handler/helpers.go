package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"orderform-service/internal/convert/model"
	"orderform-service/internal/excelcol"
	"orderform-service/internal/export"
	"orderform-service/internal/fileio"
	"orderform-service/internal/tabular"
)

// outputOptions come from form values so UIs can post them next to the file.
type outputOptions struct {
	Format    string // "csv" or "xlsx"
	CSV       export.CSVOptions
	SheetName string
}

func parseOutputOptions(r *http.Request) (outputOptions, error) {
	opt := outputOptions{Format: "xlsx", CSV: export.DefaultCSVOptions()}
	if f := r.FormValue("format"); f != "" {
		if f != "csv" && f != "xlsx" {
			return opt, fmt.Errorf("unknown format %q (want csv or xlsx)", f)
		}
		opt.Format = f
	}
	if s := r.FormValue("csv_sep"); s != "" {
		sep, ok := export.SeparatorByName(s)
		if !ok {
			return opt, fmt.Errorf("unknown csv separator %q", s)
		}
		opt.CSV.Separator = sep
	}
	if e := r.FormValue("csv_encoding"); e != "" {
		opt.CSV.Encoding = e
	}
	return opt, nil
}

// writeTable streams the result in the requested format with a timestamped
// download filename, mirroring the manual tool's export buttons.
func writeTable(w http.ResponseWriter, t *tabular.Table, stem string, opt outputOptions, numeric map[string]bool) error {
	ts := time.Now().Format("20060102_150405")
	switch opt.Format {
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, t, opt.CSV); err != nil {
			return err
		}
		cs := opt.CSV.Encoding
		if cs == "utf-8-sig" {
			cs = "utf-8"
		}
		w.Header().Set("Content-Type", "text/csv; charset="+cs)
		setDisposition(w, fmt.Sprintf("%s_%s.csv", stem, ts))
		_, err := w.Write(buf.Bytes())
		return err
	default:
		b, err := export.XLSXBytes(t, opt.SheetName, numeric)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		setDisposition(w, fmt.Sprintf("%s_%s.xlsx", stem, ts))
		_, err = w.Write(b)
		return err
	}
}

func setDisposition(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
}

// httpError maps domain errors to statuses with the original message; the
// messages already carry the operator-facing context.
func httpError(w http.ResponseWriter, err error) {
	var (
		readErr    *fileio.ReadError
		letterErr  *excelcol.InvalidLettersError
		notFound   *tabular.ColumnNotFoundError
		outOfRange *model.OutOfRangeError
		absent     *model.MappingAbsentError
	)
	switch {
	case errors.As(err, &readErr), errors.As(err, &letterErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound), errors.As(err, &outOfRange):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &absent):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
