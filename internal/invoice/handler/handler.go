// Package handler exposes the 송장등록 endpoint: one invoice file in, a ZIP
// of per-platform upload sheets out.
package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"orderform-service/internal/config"
	"orderform-service/internal/export"
	"orderform-service/internal/fileio"
	invSvc "orderform-service/internal/invoice/service"
	"orderform-service/internal/tabular"
)

// Reconcile accepts multipart fields: "invoice" (required, .xls/.xlsx) and
// the optional per-platform order files "ss_orders", "cp_orders",
// "tm_orders". Order files that fail to read are skipped with a warning —
// the remaining platforms still get their sheets, matching the original
// workflow where each order file is optional.
func Reconcile(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("req_id", rid).Logger()
		}
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		inv, err := requiredTable(r, "invoice")
		if err != nil {
			httpError(w, err)
			return
		}
		ssOrders := optionalTable(r, "ss_orders", log)
		cpOrders := optionalTable(r, "cp_orders", log)
		tmOrders := optionalTable(r, "tm_orders", log)

		orderTrack, err := invSvc.BuildOrderTrackingMap(inv)
		if err != nil {
			httpError(w, err)
			return
		}
		laoMap, ssMap := invSvc.Classify(orderTrack)

		laoOut := invSvc.LaoInvoice(laoMap)
		ssOut, err := invSvc.FillSmartstore(ssMap, ssOrders)
		if err != nil {
			httpError(w, err)
			return
		}
		cpOut, err := invSvc.FillCoupang(inv, cpOrders)
		if err != nil {
			httpError(w, err)
			return
		}
		tmOut, err := invSvc.FillTtarimall(orderTrack, tmOrders)
		if err != nil {
			httpError(w, err)
			return
		}

		z := export.NewZip()
		add := func(t *tabular.Table, name, sheet string) error {
			if t == nil || t.Width() == 0 {
				return nil
			}
			b, err := export.XLSXBytes(t, sheet, nil)
			if err != nil {
				return err
			}
			return z.Add(name, b)
		}
		if err := firstErr(
			add(laoOut, "라오 송장 완성.xlsx", ""),
			add(ssOut, "스마트스토어 송장 완성.xlsx", "발송처리"),
			add(cpOut, "쿠팡 송장 완성.xlsx", ""),
			add(tmOut, "떠리몰 송장 완성.xlsx", ""),
		); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		b, err := z.Close()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition",
			`attachment; filename*=UTF-8''invoice_reconciled_`+time.Now().Format("20060102_150405")+`.zip`)
		_, _ = w.Write(b)

		log.Info().
			Int("lao", laoMap.Len()).
			Int("smartstore", ssMap.Len()).
			Int("coupang_rows", cpOut.Len()).
			Int("ttarimall_rows", tmOut.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("invoice reconcile done")
	}
}

func requiredTable(r *http.Request, field string) (*tabular.Table, error) {
	f, fh, err := r.FormFile(field)
	if err != nil {
		return nil, &fileio.ReadError{Filename: field, Err: err}
	}
	defer f.Close()
	return fileio.ReadAny(f, fh.Filename)
}

func optionalTable(r *http.Request, field string, log zerolog.Logger) *tabular.Table {
	f, fh, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer func(c multipart.File) { _ = c.Close() }(f)
	t, err := fileio.ReadAny(f, fh.Filename)
	if err != nil {
		log.Warn().Str("field", field).Str("file", fh.Filename).Err(err).Msg("order file skipped")
		return nil
	}
	return t
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func httpError(w http.ResponseWriter, err error) {
	var (
		readErr  *fileio.ReadError
		notFound *tabular.ColumnNotFoundError
	)
	switch {
	case errors.As(err, &readErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
