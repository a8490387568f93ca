package middleware

import (
	"context"
	"docmanagement/internal/models"
)

const pkg = "middleware/"

type PrincipalProvider interface {
	PrincipalByToken(ctx context.Context, token string) (models.Principal, error)
}
