package folders

import (
	"context"
	"docmanagement/internal/models"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

const app = "docmanagementApp"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockFolderService struct{ mock.Mock }

func (m *mockFolderService) CreateFolder(ctx context.Context, principal models.Principal, folder *models.Folder) (*models.Folder, error) {
	args := m.Called(ctx, principal, folder)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, principal models.Principal, id int64, folder *models.Folder) (*models.Folder, error) {
	args := m.Called(ctx, principal, id, folder)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderService) PatchFolder(ctx context.Context, principal models.Principal, id int64, patch models.FolderPatch) (*models.Folder, error) {
	args := m.Called(ctx, principal, id, patch)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderService) FolderByID(ctx context.Context, principal models.Principal, id int64) (*models.Folder, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderService) ListFolders(ctx context.Context, principal models.Principal, pageable models.Pageable) (models.Page[*models.Folder], error) {
	args := m.Called(ctx, principal, pageable)
	return args.Get(0).(models.Page[*models.Folder]), args.Error(1)
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, principal models.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func withPrincipal(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, models.PrincipalContextKey, models.Principal{Login: login})
}
