package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/logger"
	"github.com/clipshelf/clipshelf/internal/store/catalog"
)

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 32 << 20 // 32 MB

// ListScreenshots returns the full collection, sorted by ?sort=
// (recent, oldest, likes, seo_score, views, engagement).
func ListScreenshots(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Catalog.List(r.Context(), r.URL.Query().Get("sort"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GetScreenshot returns one screenshot by ID, lazily refreshing its
// SEO profile when stale.
func GetScreenshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shot, err := d.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, shot)
	}
}

// CreateScreenshot accepts a multipart form with an "image" file plus
// optional title/url/notes fields, stores the image and creates the
// record (computing its initial SEO profile inline).
func CreateScreenshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no image file"})
			return
		}
		defer func() {
			_ = file.Close()
		}()

		imageRef, err := d.Uploads.Save(header.Filename, file)
		if err != nil {
			writeError(w, d, err)
			return
		}

		fields := catalog.Fields{}
		if v := r.FormValue("title"); v != "" {
			fields.Title = &v
		}
		if v := r.FormValue("url"); v != "" {
			fields.URL = &v
		}
		if v := r.FormValue("notes"); v != "" {
			fields.Notes = &v
		}

		shot, err := d.Catalog.Create(r.Context(), fields, imageRef)
		if err != nil {
			writeError(w, d, err)
			return
		}

		d.Logger.Info("screenshot uploaded",
			logger.String("id", shot.ID),
			logger.String("image", shot.Image))
		writeJSON(w, http.StatusCreated, shot)
	}
}

// UpdateScreenshot applies a JSON partial update. A changed URL
// triggers full re-enrichment with the updated title and notes.
func UpdateScreenshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields catalog.Fields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
			return
		}

		shot, err := d.Catalog.Update(r.Context(), chi.URLParam(r, "id"), fields)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, shot)
	}
}

// DeleteScreenshot removes a screenshot. The stored image is left on
// disk; the catalog only owns the reference.
func DeleteScreenshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
