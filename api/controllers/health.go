package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/clearwell/clearwell-backend/api/responses"
	"github.com/clearwell/clearwell-backend/pkg/config"
	"github.com/clearwell/clearwell-backend/pkg/logger"
)

const envHeader = "X-ClearWell-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the backing stores. Any failed ping flips
// the endpoint to 503 so the platform stops routing traffic here.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]string{}
		ready := true

		checks["database"] = checkDependency(ctx, logg, "database", db)
		checks["redis"] = checkDependency(ctx, logg, "redis", cache)
		for _, status := range checks {
			if status != "ok" {
				ready = false
			}
		}

		payload := map[string]any{"status": "ready", "checks": checks}
		if !ready {
			payload["status"] = "degraded"
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, payload)
			return
		}
		responses.WriteSuccess(w, payload)
	}
}

func checkDependency(ctx context.Context, logg *logger.Logger, name string, dep pinger) string {
	if dep == nil {
		return "missing"
	}
	if err := dep.Ping(ctx); err != nil {
		if logg != nil {
			logg.Error(ctx, "readiness check failed: "+name, err)
		}
		return "unavailable"
	}
	return "ok"
}
