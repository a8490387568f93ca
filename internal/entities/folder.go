package entities

import (
	"database/sql"
)

type Folder struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Created     sql.NullTime   `db:"created"`
}
