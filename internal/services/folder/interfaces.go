package folderservice

import (
	"context"
	"docmanagement/internal/models"
)

type FolderRepository interface {
	Save(ctx context.Context, folder *models.Folder) error
	ByID(ctx context.Context, id int64) (*models.Folder, error)
	List(ctx context.Context, pageable models.Pageable) (models.Page[*models.Folder], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
