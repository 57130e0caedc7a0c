package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Screenshots *int   `json:"screenshots,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
}

type infraResponse struct {
	EnrichmentMode string                     `json:"enrichment_mode"`
	Components     map[string]componentStatus `json:"components"`
}

// Infra reports component health: the catalog store and the metadata
// gateway. The gateway being disabled is not an outage, enrichment just
// degrades to text-only analysis.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		count := d.Catalog.Count()

		components := map[string]componentStatus{
			"catalog": {
				OK:          true,
				Screenshots: &count,
			},
			"youtube": gatewayStatus(d),
		}

		mode := "full"
		if !components["youtube"].OK {
			mode = "text-only"
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			EnrichmentMode: mode,
			Components:     components,
		})
	}
}

func gatewayStatus(d deps.Deps) componentStatus {
	if d.Gateway == nil || !d.Gateway.Enabled() {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "provider statistics unavailable, scores use text features only",
		}
	}
	return componentStatus{
		OK:   true,
		Mode: "enabled",
	}
}
