package cachesessionrepo

import (
	"context"
	"docmanagement/internal/models"
	cacherepo "docmanagement/internal/repositories/cache"
)

const keyPrefix = "session:"

type repository struct {
	cache cacherepo.Cache
}

func New(cache cacherepo.Cache) *repository {
	return &repository{
		cache: cache,
	}
}

// PrincipalByToken returns the principal JSON stored for token.
func (r *repository) PrincipalByToken(ctx context.Context, token string) (string, error) {
	principalJSON, err := r.cache.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return "", err
	}

	if principalJSON == "" {
		return "", models.ErrSessionNotFound
	}

	return principalJSON, nil
}
