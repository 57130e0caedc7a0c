package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/uploads"
)

func init() { Register(registerStatic) }

// registerStatic serves stored images back under the public upload prefix.
func registerStatic(r chi.Router, d deps.Deps) {
	fs := http.StripPrefix(uploads.PublicPrefix+"/", http.FileServer(http.Dir(d.Uploads.Dir())))
	r.Get(uploads.PublicPrefix+"/*", fs.ServeHTTP)
}
