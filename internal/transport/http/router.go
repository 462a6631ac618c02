package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-translator/internal/config"
	"github.com/go-translator/internal/transport/http/handler"
	appmiddleware "github.com/go-translator/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. ctx bounds the
// lifetime of background work such as rate-limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.AccessLog(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// Applied to endpoints that call the translation backend or S3.
	costlyRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	healthH := handler.NewHealthHandler()
	langH := handler.NewLanguageHandler(deps.Languages)
	translateH := handler.NewTranslateHandler(deps.Translate, deps.Languages)
	historyH := handler.NewHistoryHandler(deps.History)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Get("/languages", langH.List)
		r.Get("/languages/{code}", langH.Get)

		// ── Owner-scoped routes ──────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.With(costlyRL.Limit).Post("/translate", translateH.Translate)

			r.Get("/history", historyH.List)
			r.With(costlyRL.Limit).Post("/history/export", historyH.Export)
			r.Get("/history/{id}", historyH.Get)
			r.Delete("/history/{id}", historyH.Delete)
		})
	})

	return r
}
