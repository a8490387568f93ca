package folders

import (
	"docmanagement/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/5", nil)
	ctx := req.Context()

	service := new(mockFolderService)
	service.On("DeleteFolder", ctx, models.Anonymous(), int64(5)).Return(nil)

	Delete(ctx, discard, w, req, app, 5, service)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "docmanagementApp.folder.deleted", w.Header().Get("X-docmanagementApp-alert"))
	assert.Empty(t, w.Body.String())
	service.AssertExpectations(t)
}

func TestDelete_Fail_Internal(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/5", nil)
	ctx := req.Context()

	service := new(mockFolderService)
	service.On("DeleteFolder", ctx, mock.Anything, int64(5)).Return(models.ErrInternal)

	Delete(ctx, discard, w, req, app, 5, service)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
