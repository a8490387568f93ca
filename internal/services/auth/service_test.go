package authservice

import (
	"context"
	"docmanagement/internal/models"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionProvider struct {
	mock.Mock
}

func (m *mockSessionProvider) PrincipalByToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newService(sp SessionProvider) *AuthService {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), sp)
}

func TestPrincipalByToken_EmptyTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	sp := new(mockSessionProvider)

	principal, err := newService(sp).PrincipalByToken(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, principal.IsAnonymous())
	sp.AssertNotCalled(t, "PrincipalByToken", mock.Anything, mock.Anything)
}

func TestPrincipalByToken_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sp := new(mockSessionProvider)
	sp.On("PrincipalByToken", ctx, "tok").Return(`{"login":"admin"}`, nil)

	principal, err := newService(sp).PrincipalByToken(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, models.Principal{Login: "admin"}, principal)
	sp.AssertExpectations(t)
}

func TestPrincipalByToken_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stored   string
		storeErr error
		expected error
	}{
		{"unknown session", "", models.ErrSessionNotFound, models.ErrInvalidCredentials},
		{"cache failure", "", errors.New("redis down"), models.ErrInternal},
		{"corrupt session", "{", nil, models.ErrInternal},
		{"session without login", `{}`, nil, models.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			sp := new(mockSessionProvider)
			sp.On("PrincipalByToken", ctx, "tok").Return(tt.stored, tt.storeErr)

			_, err := newService(sp).PrincipalByToken(ctx, "tok")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
