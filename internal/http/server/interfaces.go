package server

import (
	"context"
	"docmanagement/internal/models"
)

type FolderService interface {
	CreateFolder(ctx context.Context, principal models.Principal, folder *models.Folder) (*models.Folder, error)
	UpdateFolder(ctx context.Context, principal models.Principal, id int64, folder *models.Folder) (*models.Folder, error)
	PatchFolder(ctx context.Context, principal models.Principal, id int64, patch models.FolderPatch) (*models.Folder, error)
	FolderByID(ctx context.Context, principal models.Principal, id int64) (*models.Folder, error)
	ListFolders(ctx context.Context, principal models.Principal, pageable models.Pageable) (models.Page[*models.Folder], error)
	DeleteFolder(ctx context.Context, principal models.Principal, id int64) error
}

type DocumentService interface {
	CreateDocument(ctx context.Context, principal models.Principal, doc *models.Document) (*models.Document, error)
	UpdateDocument(ctx context.Context, principal models.Principal, id int64, doc *models.Document) (*models.Document, error)
	PatchDocument(ctx context.Context, principal models.Principal, id int64, patch models.DocumentPatch) (*models.Document, error)
	DocumentByID(ctx context.Context, principal models.Principal, id int64) (*models.Document, error)
	ListDocuments(ctx context.Context, principal models.Principal, pageable models.Pageable, eager bool) (models.Page[*models.Document], error)
	DeleteDocument(ctx context.Context, principal models.Principal, id int64) error
}

type AuthService interface {
	PrincipalByToken(ctx context.Context, token string) (models.Principal, error)
}
