package controllers

import (
	"net/http"

	"github.com/angelmondragon/arbuz-storefront/api/responses"
	"github.com/angelmondragon/arbuz-storefront/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the session holds a catalog.
func HealthReady(cfg *config.Config, svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]any{"status": "ready", "products": len(svc.Catalog())})
	}
}
