package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyActor     contextKey = "actor"
	contextKeyRequestID contextKey = "request_id"
)

// ActorFromContext returns the authenticated caller, if any
func ActorFromContext(ctx context.Context) (service.Actor, bool) {
	actor, ok := ctx.Value(contextKeyActor).(service.Actor)
	return actor, ok
}

// RequestIDMiddleware assigns each request a correlation id and logs
// the request once it completes
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		logger.WithRequest(requestID).Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// AuthMiddleware validates the bearer token and stashes the caller identity
// in the request context. Token issuing lives elsewhere; this only verifies.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid authorization header"})
				return
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			actor := service.Actor{ID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), contextKeyActor, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
