package folderrepo

import (
	"context"
	"database/sql"
	"docmanagement/internal/dbs/postgres"
	"docmanagement/internal/entities"
	"docmanagement/internal/models"
	dbrepo "docmanagement/internal/repositories/db"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "folderRepo/"

var sortColumns = map[string]string{
	"id":          "f.id",
	"title":       "f.title",
	"description": "f.description",
	"created":     "f.created",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, folder *models.Folder) error {
	op := pkg + "Save"

	row := toEntity(folder)

	if folder.ID == 0 {
		err := postgres.Conn(ctx, r.db).QueryRowxContext(ctx,
			`INSERT INTO folders (title, description, created)
			VALUES ($1, $2, $3)
			RETURNING id`,
			row.Title, row.Description, row.Created).Scan(&folder.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}

	res, err := postgres.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE folders SET title = $1, description = $2, created = $3 WHERE id = $4`,
		row.Title, row.Description, row.Created, row.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
	}

	return nil
}

func (r *repository) ByID(ctx context.Context, id int64) (*models.Folder, error) {
	op := pkg + "ByID"

	rawFolder := entities.Folder{}

	err := postgres.Conn(ctx, r.db).GetContext(ctx, &rawFolder,
		`SELECT
			f.id AS id,
			f.title AS title,
			f.description AS description,
			f.created AS created
		FROM folders f
		WHERE f.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModel(rawFolder), nil
}

func (r *repository) List(ctx context.Context, pageable models.Pageable) (models.Page[*models.Folder], error) {
	op := pkg + "List"

	orderBy, err := dbrepo.OrderBy(pageable, sortColumns, "f.id")
	if err != nil {
		return models.Page[*models.Folder]{}, fmt.Errorf("%s: %w", op, err)
	}

	conn := postgres.Conn(ctx, r.db)

	var total int64

	if err := conn.GetContext(ctx, &total, `SELECT count(*) FROM folders`); err != nil {
		return models.Page[*models.Folder]{}, fmt.Errorf("%s: %w", op, err)
	}

	rawFolders := make([]entities.Folder, 0)

	err = conn.SelectContext(ctx, &rawFolders,
		`SELECT
			f.id AS id,
			f.title AS title,
			f.description AS description,
			f.created AS created
		FROM folders f`+orderBy+` LIMIT $1 OFFSET $2`,
		pageable.Size, pageable.Offset())
	if err != nil {
		return models.Page[*models.Folder]{}, fmt.Errorf("%s: %w", op, err)
	}

	folders := make([]*models.Folder, 0, len(rawFolders))

	for _, rawFolder := range rawFolders {
		folders = append(folders, toModel(rawFolder))
	}

	return models.Page[*models.Folder]{
		Content:  folders,
		Total:    total,
		Pageable: pageable,
	}, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	op := pkg + "ExistsByID"

	var exists bool

	err := postgres.Conn(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	op := pkg + "DeleteByID"

	_, err := postgres.Conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM folders WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func toEntity(f *models.Folder) entities.Folder {
	row := entities.Folder{
		ID:    f.ID,
		Title: f.Title,
	}

	if f.Description != nil {
		row.Description = sql.NullString{String: *f.Description, Valid: true}
	}

	if f.Created != nil {
		row.Created = sql.NullTime{Time: *f.Created, Valid: true}
	}

	return row
}

func toModel(row entities.Folder) *models.Folder {
	folder := &models.Folder{
		ID:    row.ID,
		Title: row.Title,
	}

	if row.Description.Valid {
		description := row.Description.String
		folder.Description = &description
	}

	if row.Created.Valid {
		created := row.Created.Time
		folder.Created = &created
	}

	return folder
}
