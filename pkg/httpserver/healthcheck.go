package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/screenkit/pkg/logger"
)

// HealthCheckHandler returns an HTTP handler usable for both liveness
// and readiness probes.
//
//   - Liveness: when no dependency functions are supplied the handler
//     simply returns 200 OK with body "ALIVE".
//   - Readiness: when one or more dependency functions are supplied each
//     is executed; if they all succeed the handler returns 200 OK with
//     body "READY", otherwise 500 with body "NOT_READY".
func HealthCheckHandler(ctx context.Context, log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		for _, f := range funcs {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
