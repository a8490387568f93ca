package documentrepo

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
	"github.com/lib/pq"
)

const pkg = "documentRepo/"

const foreignKeyViolation = "23503"

const selectColumns = `SELECT
			d.id AS id,
			d.title AS title,
			d.description AS description,
			d.data AS data,
			d.data_content_type AS data_content_type,
			d.uploaded AS uploaded,
			d.folder_id AS folder_id`

const joinedColumns = `,
			f.title AS folder_title,
			f.description AS folder_description,
			f.created AS folder_created`

var sortColumns = map[string]string{
	"id":              "d.id",
	"title":           "d.title",
	"description":     "d.description",
	"dataContentType": "d.data_content_type",
	"uploaded":        "d.uploaded",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, doc *models.Document) error {
	op := pkg + "Save"

	row := toEntity(doc)

	// A nil payload is NULL, an empty one is an empty bytea.
	var data any

	if row.Data != nil {
		data = row.Data
	}

	if doc.ID == 0 {
		err := postgres.Conn(ctx, r.db).QueryRowxContext(ctx,
			`INSERT INTO documents (title, description, data, data_content_type, uploaded, folder_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			row.Title, row.Description, data, row.DataContentType, row.Uploaded, row.FolderID).Scan(&doc.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, mapError(err))
		}

		return nil
	}

	res, err := postgres.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE documents
		SET title = $1, description = $2, data = $3, data_content_type = $4, uploaded = $5, folder_id = $6
		WHERE id = $7`,
		row.Title, row.Description, data, row.DataContentType, row.Uploaded, row.FolderID, row.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
	}

	return nil
}

func (r *repository) ByID(ctx context.Context, id int64) (*models.Document, error) {
	return r.byID(ctx, pkg+"ByID", id, false)
}

func (r *repository) ByIDWithFolder(ctx context.Context, id int64) (*models.Document, error) {
	return r.byID(ctx, pkg+"ByIDWithFolder", id, true)
}

func (r *repository) List(ctx context.Context, pageable models.Pageable) (models.Page[*models.Document], error) {
	return r.list(ctx, pkg+"List", pageable, false)
}

func (r *repository) ListWithFolder(ctx context.Context, pageable models.Pageable) (models.Page[*models.Document], error) {
	return r.list(ctx, pkg+"ListWithFolder", pageable, true)
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	op := pkg + "ExistsByID"

	var exists bool

	err := postgres.Conn(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM documents WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	op := pkg + "DeleteByID"

	_, err := postgres.Conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) byID(ctx context.Context, op string, id int64, withFolder bool) (*models.Document, error) {
	rawDoc := entities.Document{}

	err := postgres.Conn(ctx, r.db).GetContext(ctx, &rawDoc, selectQuery(withFolder)+`
		WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModel(rawDoc, withFolder), nil
}

func (r *repository) list(ctx context.Context, op string, pageable models.Pageable, withFolder bool) (models.Page[*models.Document], error) {
	orderBy, err := dbrepo.OrderBy(pageable, sortColumns, "d.id")
	if err != nil {
		return models.Page[*models.Document]{}, fmt.Errorf("%s: %w", op, err)
	}

	conn := postgres.Conn(ctx, r.db)

	var total int64

	if err := conn.GetContext(ctx, &total, `SELECT count(*) FROM documents`); err != nil {
		return models.Page[*models.Document]{}, fmt.Errorf("%s: %w", op, err)
	}

	rawDocs := make([]entities.Document, 0)

	err = conn.SelectContext(ctx, &rawDocs, selectQuery(withFolder)+orderBy+` LIMIT $1 OFFSET $2`,
		pageable.Size, pageable.Offset())
	if err != nil {
		return models.Page[*models.Document]{}, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0, len(rawDocs))

	for _, rawDoc := range rawDocs {
		docs = append(docs, toModel(rawDoc, withFolder))
	}

	return models.Page[*models.Document]{
		Content:  docs,
		Total:    total,
		Pageable: pageable,
	}, nil
}

func selectQuery(withFolder bool) string {
	if withFolder {
		return selectColumns + joinedColumns + `
		FROM documents d
		LEFT JOIN folders f ON f.id = d.folder_id`
	}

	return selectColumns + `
		FROM documents d`
}

// mapError turns a folder_id foreign key violation into ErrFolderNotFound.
func mapError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", models.ErrFolderNotFound, pgErr.Constraint)
	}
	return err
}

func toEntity(d *models.Document) entities.Document {
	row := entities.Document{
		ID:    d.ID,
		Title: d.Title,
		Data:  d.Data,
	}

	if d.Description != nil {
		row.Description = sql.NullString{String: *d.Description, Valid: true}
	}

	if d.DataContentType != nil {
		row.DataContentType = sql.NullString{String: *d.DataContentType, Valid: true}
	}

	if d.Uploaded != nil {
		row.Uploaded = sql.NullTime{Time: *d.Uploaded, Valid: true}
	}

	if d.FolderID != nil {
		row.FolderID = sql.NullInt64{Int64: *d.FolderID, Valid: true}
	}

	return row
}

func toModel(row entities.Document, withFolder bool) *models.Document {
	doc := &models.Document{
		ID:    row.ID,
		Title: row.Title,
		Data:  row.Data,
	}

	if row.Description.Valid {
		description := row.Description.String
		doc.Description = &description
	}

	if row.DataContentType.Valid {
		contentType := row.DataContentType.String
		doc.DataContentType = &contentType
	}

	if row.Uploaded.Valid {
		uploaded := row.Uploaded.Time
		doc.Uploaded = &uploaded
	}

	if row.FolderID.Valid {
		folderID := row.FolderID.Int64
		doc.FolderID = &folderID

		// A dangling reference leaves FolderTitle NULL after the LEFT JOIN.
		if withFolder && row.FolderTitle.Valid {
			folder := &models.Folder{ID: folderID, Title: row.FolderTitle.String}
			if row.FolderDescription.Valid {
				description := row.FolderDescription.String
				folder.Description = &description
			}
			if row.FolderCreated.Valid {
				created := row.FolderCreated.Time
				folder.Created = &created
			}
			doc.Folder = folder
		}
	}

	return doc
}
