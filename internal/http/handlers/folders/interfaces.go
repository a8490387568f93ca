package folders

import (
	"context"
	"docmanagement/internal/models"
)

const pkg = "foldersHandler/"

type FolderCreator interface {
	CreateFolder(ctx context.Context, principal models.Principal, folder *models.Folder) (*models.Folder, error)
}

type FolderUpdater interface {
	UpdateFolder(ctx context.Context, principal models.Principal, id int64, folder *models.Folder) (*models.Folder, error)
	PatchFolder(ctx context.Context, principal models.Principal, id int64, patch models.FolderPatch) (*models.Folder, error)
}

type FolderProvider interface {
	FolderByID(ctx context.Context, principal models.Principal, id int64) (*models.Folder, error)
	ListFolders(ctx context.Context, principal models.Principal, pageable models.Pageable) (models.Page[*models.Folder], error)
}

type FolderDeleter interface {
	DeleteFolder(ctx context.Context, principal models.Principal, id int64) error
}
