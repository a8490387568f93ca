package authservice

import (
	"context"
)

type SessionProvider interface {
	PrincipalByToken(ctx context.Context, token string) (string, error)
}
