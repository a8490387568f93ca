package middleware

import (
	"context"
	"docmanagement/internal/models"
	utils "docmanagement/internal/utils/http_errors"
	"log/slog"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Auth puts the request principal into the context. Requests without a token run as the anonymous principal.
func Auth(log *slog.Logger, provider PrincipalProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			log := log.With(slog.String("op", op))

			principal, err := provider.PrincipalByToken(r.Context(), token(r))
			if err != nil {
				log.Warn("failed get principal by token", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusForbidden, "token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), models.PrincipalContextKey, principal)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func token(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return r.URL.Query().Get("token")
}

// PrincipalFrom falls back to the anonymous principal when Auth did not run.
func PrincipalFrom(ctx context.Context) models.Principal {
	principal, ok := ctx.Value(models.PrincipalContextKey).(models.Principal)
	if !ok {
		return models.Anonymous()
	}

	return principal
}
