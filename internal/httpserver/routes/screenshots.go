package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/httpserver/handlers"
	"github.com/clipshelf/clipshelf/internal/httpserver/mw"
)

func init() { Register(registerScreenshots) }

func registerScreenshots(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})

	r.Route("/api/screenshots", func(r chi.Router) {
		r.Get("/", handlers.ListScreenshots(d))
		r.Get("/{id}", handlers.GetScreenshot(d))
		r.Get("/{id}/seo", handlers.GetSeoProfile(d))

		r.With(limit).Post("/", handlers.CreateScreenshot(d))
		r.With(limit).Patch("/{id}", handlers.UpdateScreenshot(d))
		r.With(limit).Delete("/{id}", handlers.DeleteScreenshot(d))
		r.With(limit).Post("/{id}/seo/refresh", handlers.RefreshSeoProfile(d))
	})
}
