package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"shortlink/internal/lib/jwt"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const ContextKeyOwnerID contextKey = "owner_id"

// New rejects any request without a valid Bearer token before the handler
// runs, and stores the caller's opaque owner id in the request context.
// Routes behind this middleware never see an unauthenticated request.
func New(log *slog.Logger, validator *jwt.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.auth.New"

		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("invalid authorization header format")
				http.Error(w, "Unauthorized: invalid header format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				log.Warn("token validation failed", slog.String("error", err.Error()))
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOwnerID, claims.UID)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// GetOwnerID retrieves the authenticated owner's id from the request context.
// Returns the id and true if found, or empty string and false otherwise.
func GetOwnerID(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ContextKeyOwnerID).(string)
	return ownerID, ok
}
