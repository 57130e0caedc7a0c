package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/logger"
	"github.com/clipshelf/clipshelf/internal/store/catalog"
	"github.com/clipshelf/clipshelf/internal/uploads"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps store errors onto the API error taxonomy:
// NotFound -> 404, validation -> 400, everything else -> 500.
func writeError(w http.ResponseWriter, d deps.Deps, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "screenshot not found"})
	case errors.Is(err, catalog.ErrValidation), errors.Is(err, uploads.ErrInvalidFile):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		d.Logger.Error("request failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
