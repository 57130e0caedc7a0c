package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/logger"
)

// GetSeoProfile returns the SEO profile for one screenshot, lazily
// refreshing it when stale.
func GetSeoProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shot, err := d.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, shot.Seo)
	}
}

// RefreshSeoProfile forces full re-enrichment regardless of staleness.
func RefreshSeoProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		profile, err := d.Catalog.RefreshSeo(r.Context(), id)
		if err != nil {
			writeError(w, d, err)
			return
		}

		d.Logger.Info("seo profile refreshed",
			logger.String("id", id),
			logger.Int("score", profile.Score))
		writeJSON(w, http.StatusOK, profile)
	}
}
