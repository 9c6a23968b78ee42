package controllers

import (
	"context"
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports service liveness plus the state of each dependency.
func Health(db, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := map[string]string{"service": "ok"}

		healthy := true
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				status["database"] = "down"
				healthy = false
			} else {
				status["database"] = "ok"
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				status["cache"] = "down"
				healthy = false
			} else {
				status["cache"] = "ok"
			}
		}

		if !healthy {
			if logg != nil {
				logg.Warn(ctx, "health check found degraded dependencies")
			}
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, status)
			return
		}
		responses.WriteSuccess(w, status)
	}
}
