package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"orderform-service/internal/config"
	convHnd "orderform-service/internal/convert/handler"
	"orderform-service/internal/convert/model"
	invHnd "orderform-service/internal/invoice/handler"
	"orderform-service/internal/mapstore"
	"orderform-service/internal/middleware"
	"orderform-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, store *mapstore.Store) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// per-platform conversions to the 3PL shipping template
	r.Post("/convert/laora", convHnd.Convert(model.Laora, cfg, logger, store))
	r.Post("/convert/coupang", convHnd.Convert(model.Coupang, cfg, logger, store))
	r.Post("/convert/smartstore", convHnd.Convert(model.Smartstore, cfg, logger, store))
	r.Post("/convert/ttarimall", convHnd.Convert(model.Ttarimall, cfg, logger, store))
	r.Post("/convert/batch", convHnd.Batch(cfg, logger, store))

	// saved 라오라 letter mapping (JSON export/import)
	r.Get("/mapping/laora", convHnd.GetMapping(store))
	r.Put("/mapping/laora", convHnd.PutMapping(logger, store))

	// 송장등록: invoice file + optional order files -> ZIP of upload sheets
	r.Post("/invoice/reconcile", invHnd.Reconcile(cfg, logger))

	return r
}
