package handler

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"orderform-service/internal/convert/model"
	"orderform-service/internal/mapstore"
)

// GetMapping exports the saved 라오라 letter mapping as JSON.
func GetMapping(store *mapstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := store.ExportJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(b)
	}
}

// PutMapping imports a mapping JSON. Unknown fields and malformed letters
// are discarded with fallback to the previous/default values, so a stale
// export never breaks the session.
func PutMapping(logger zerolog.Logger, store *mapstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.ImportJSON(body, model.TemplateColumns()); err != nil {
			http.Error(w, "bad mapping json: "+err.Error(), http.StatusBadRequest)
			return
		}
		rl := reqLogger(logger, r)
		rl.Info().Msg("laora mapping imported")
		b, err := store.ExportJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(b)
	}
}
