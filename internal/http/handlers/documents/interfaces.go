package documents

import (
	"context"
	"docmanagement/internal/models"
)

const pkg = "documentsHandler/"

type DocumentCreator interface {
	CreateDocument(ctx context.Context, principal models.Principal, doc *models.Document) (*models.Document, error)
}

type DocumentUpdater interface {
	UpdateDocument(ctx context.Context, principal models.Principal, id int64, doc *models.Document) (*models.Document, error)
	PatchDocument(ctx context.Context, principal models.Principal, id int64, patch models.DocumentPatch) (*models.Document, error)
}

type DocumentProvider interface {
	DocumentByID(ctx context.Context, principal models.Principal, id int64) (*models.Document, error)
	ListDocuments(ctx context.Context, principal models.Principal, pageable models.Pageable, eager bool) (models.Page[*models.Document], error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, principal models.Principal, id int64) error
}
