package entities

import "database/sql"

type Document struct {
	ID              int64          `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Data            []byte         `db:"data"`
	DataContentType sql.NullString `db:"data_content_type"`
	Uploaded        sql.NullTime   `db:"uploaded"`
	FolderID        sql.NullInt64  `db:"folder_id"`

	// Filled only by queries joining folders.
	FolderTitle       sql.NullString `db:"folder_title"`
	FolderDescription sql.NullString `db:"folder_description"`
	FolderCreated     sql.NullTime   `db:"folder_created"`
}
