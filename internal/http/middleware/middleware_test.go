package middleware

import (
	"context"
	"docmanagement/internal/models"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPrincipalProvider struct{ mock.Mock }

func (m *mockPrincipalProvider) PrincipalByToken(ctx context.Context, token string) (models.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Principal), args.Error(1)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func captureHandler(got *models.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth_BearerToken(t *testing.T) {
	t.Parallel()

	provider := new(mockPrincipalProvider)
	provider.On("PrincipalByToken", mock.Anything, "tok123").Return(models.Principal{Login: "admin"}, nil)

	var got models.Principal

	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	w := httptest.NewRecorder()

	Auth(discard, provider)(captureHandler(&got)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "admin", got.Login)
	provider.AssertExpectations(t)
}

func TestAuth_QueryToken(t *testing.T) {
	t.Parallel()

	provider := new(mockPrincipalProvider)
	provider.On("PrincipalByToken", mock.Anything, "tok").Return(models.Principal{Login: "user"}, nil)

	var got models.Principal

	req := httptest.NewRequest(http.MethodGet, "/api/folders?token=tok", nil)
	w := httptest.NewRecorder()

	Auth(discard, provider)(captureHandler(&got)).ServeHTTP(w, req)

	assert.Equal(t, "user", got.Login)
}

func TestAuth_Anonymous(t *testing.T) {
	t.Parallel()

	provider := new(mockPrincipalProvider)
	provider.On("PrincipalByToken", mock.Anything, "").Return(models.Anonymous(), nil)

	var got models.Principal

	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	w := httptest.NewRecorder()

	Auth(discard, provider)(captureHandler(&got)).ServeHTTP(w, req)

	assert.True(t, got.IsAnonymous())
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	provider := new(mockPrincipalProvider)
	provider.On("PrincipalByToken", mock.Anything, "bad").Return(models.Principal{}, models.ErrInvalidCredentials)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/folders?token=bad", nil)
	w := httptest.NewRecorder()

	Auth(discard, provider)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestPrincipalFrom_Missing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.AnonymousLogin, PrincipalFrom(context.Background()).Login)
}

func TestLogger_RequestID(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	})

	w := httptest.NewRecorder()
	Logger(discard)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given")
	w = httptest.NewRecorder()
	Logger(discard)(next).ServeHTTP(w, req)

	assert.Equal(t, "given", w.Header().Get(HeaderRequestID))
}
