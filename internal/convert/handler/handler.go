// Package handler exposes the per-platform conversion endpoints. Handlers
// own multipart parsing and serialization; the transforms in
// convert/service stay pure.
package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"orderform-service/internal/config"
	"orderform-service/internal/convert/model"
	convSvc "orderform-service/internal/convert/service"
	"orderform-service/internal/export"
	"orderform-service/internal/fileio"
	"orderform-service/internal/mapstore"
	"orderform-service/internal/tabular"
)

// Download filename stems per platform, kept verbatim from the 3PL order
// workflow the warehouse team runs.
var fileStems = map[model.Platform]string{
	model.Laora:      "라오 3pl발주용",
	model.Coupang:    "쿠팡 3pl발주용",
	model.Smartstore: "스마트스토어 3pl발주용",
	model.Ttarimall:  "떠리몰 3pl발주용",
}

// Convert returns the handler for one platform's conversion endpoint.
// Multipart fields: "source" (required), "template" (optional sample
// workbook driving numeric alignment), plus output options.
func Convert(platform model.Platform, cfg config.Config, logger zerolog.Logger, store *mapstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		opt, err := parseOutputOptions(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if platform == model.Smartstore {
			// the storefront upload form requires this sheet name and a
			// comma-separated CSV
			opt.SheetName = "발송처리"
			opt.CSV.Separator = ','
		}

		src, tpl, err := readSourceAndTemplate(r)
		if err != nil {
			httpError(w, err)
			return
		}

		var out *tabular.Table
		switch platform {
		case model.Laora:
			out, err = convSvc.ConvertLaora(src, store.Current(), tpl)
		case model.Coupang:
			out, err = convSvc.ConvertCoupang(src, tpl)
		case model.Smartstore:
			out, err = convSvc.ConvertSmartstore(src, tpl)
		case model.Ttarimall:
			out, err = convSvc.ConvertTtarimall(src, tpl)
		}
		if err != nil {
			log.Warn().Str("platform", string(platform)).Err(err).Msg("convert failed")
			httpError(w, err)
			return
		}

		if err := writeTable(w, out, fileStems[platform], opt, numericFor(tpl)); err != nil {
			log.Error().Err(err).Msg("write response")
			return
		}
		log.Info().
			Str("platform", string(platform)).
			Int("rows", out.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("convert done")
	}
}

// Batch converts many files in one request: each is auto-detected,
// converted, and packed into a ZIP together with a per-file log. A failing
// file is logged and skipped, never fatal.
func Batch(cfg config.Config, logger zerolog.Logger, store *mapstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
			http.Error(w, "missing files", http.StatusBadRequest)
			return
		}

		tpl, err := templateFromForm(r)
		if err != nil {
			httpError(w, err)
			return
		}

		var inputs []convSvc.BatchInput
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, "open upload: "+err.Error(), http.StatusBadRequest)
				return
			}
			defer f.Close()
			inputs = append(inputs, convSvc.BatchInput{Name: fh.Filename, Data: f})
		}

		items, logs := convSvc.Batch(inputs, store.Current(), tpl, log)

		z := export.NewZip()
		for _, it := range items {
			b, err := export.XLSXBytes(it.Table, "", numericFor(tpl))
			if err != nil {
				log.Error().Str("file", it.InputName).Err(err).Msg("batch: xlsx render")
				continue
			}
			if err := z.Add(it.OutputName, b); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		if err := z.Add("batch_convert_log.txt", export.BatchLog(logs, time.Now())); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		b, err := z.Close()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		setDisposition(w, "batch_converted_"+time.Now().Format("20060102_150405")+".zip")
		_, _ = w.Write(b)

		log.Info().
			Int("files", len(inputs)).
			Int("converted", len(items)).
			Dur("elapsed", time.Since(start)).
			Msg("batch done")
	}
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func readSourceAndTemplate(r *http.Request) (*tabular.Table, model.Template, error) {
	tpl, err := templateFromForm(r)
	if err != nil {
		return nil, tpl, err
	}
	f, fh, err := r.FormFile("source")
	if err != nil {
		return nil, tpl, &fileio.ReadError{Filename: "source", Err: err}
	}
	defer f.Close()
	src, err := fileio.ReadAny(f, fh.Filename)
	if err != nil {
		return nil, tpl, err
	}
	return src, tpl, nil
}

// templateFromForm reads the optional template workbook; without one the
// default seven-column template applies.
func templateFromForm(r *http.Request) (model.Template, error) {
	f, fh, err := r.FormFile("template")
	if err != nil {
		return model.DefaultTemplate(), nil
	}
	defer f.Close()
	t, err := fileio.ReadAny(f, fh.Filename)
	if err != nil {
		return model.DefaultTemplate(), err
	}
	return model.InferTemplate(t), nil
}

func numericFor(tpl model.Template) map[string]bool {
	numeric := map[string]bool{model.FieldQty: true}
	for k, v := range tpl.Numeric {
		if v && k != model.FieldPhone {
			numeric[k] = true
		}
	}
	return numeric
}
