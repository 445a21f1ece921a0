package media

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireUser reads the caller identity the gateway injects via X-User-Id.
// Requests without it never reach a handler.
func RequireUser(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-Id")
			if userID == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing caller identity", logger)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the caller identity placed in the context by RequireUser
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
