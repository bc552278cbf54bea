package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/yallashop/yallashop-backend/api/responses"
	"github.com/yallashop/yallashop-backend/pkg/config"
	pkgerrors "github.com/yallashop/yallashop-backend/pkg/errors"
	"github.com/yallashop/yallashop-backend/pkg/logger"
	redispkg "github.com/yallashop/yallashop-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-YallaShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness once the cart store answers.
func HealthReady(cfg *config.Config, logg *logger.Logger, cartStore redispkg.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-YallaShop-Env", cfg.App.Env)

		if cartStore != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := cartStore.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
