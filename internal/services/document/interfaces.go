package documentservice

import (
	"context"
	"docmanagement/internal/models"
)

type DocumentRepository interface {
	Save(ctx context.Context, doc *models.Document) error
	ByIDWithFolder(ctx context.Context, id int64) (*models.Document, error)
	List(ctx context.Context, pageable models.Pageable) (models.Page[*models.Document], error)
	ListWithFolder(ctx context.Context, pageable models.Pageable) (models.Page[*models.Document], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type FolderProvider interface {
	ByID(ctx context.Context, id int64) (*models.Folder, error)
}

type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
