package authservice

import (
	"context"
	"docmanagement/internal/models"
	"encoding/json"
	"errors"
	"log/slog"
)

const pkg = "authService/"

// AuthService resolves session tokens issued elsewhere into principals.
type AuthService struct {
	log             *slog.Logger
	sessionProvider SessionProvider
}

func New(log *slog.Logger, sessionProvider SessionProvider) *AuthService {
	return &AuthService{
		log:             log,
		sessionProvider: sessionProvider,
	}
}

// PrincipalByToken returns the anonymous principal for an empty token.
func (a *AuthService) PrincipalByToken(ctx context.Context, token string) (models.Principal, error) {
	op := pkg + "PrincipalByToken"

	log := a.log.With(slog.String("op", op))

	if token == "" {
		return models.Anonymous(), nil
	}

	log.Debug("attempting to get principal by token")

	principalJSON, err := a.sessionProvider.PrincipalByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session not found", slog.String("error", err.Error()))
			return models.Principal{}, models.ErrInvalidCredentials
		}
		log.Error("failed to get principal by token", slog.String("error", err.Error()))
		return models.Principal{}, models.ErrInternal
	}

	var principal models.Principal

	if err := json.Unmarshal([]byte(principalJSON), &principal); err != nil {
		log.Error("failed to unmarshal principal from json", slog.String("error", err.Error()))
		return models.Principal{}, models.ErrInternal
	}

	if principal.Login == "" {
		log.Warn("session without login")
		return models.Principal{}, models.ErrInvalidCredentials
	}

	log.Debug("principal found successfully", slog.String("login", principal.Login))

	return principal, nil
}
