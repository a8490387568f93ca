package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxTitleLength = 255

type Folder struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Created     *time.Time `json:"created"`
}

// Equal reports whether both folders are persisted and share the same id.
func (f *Folder) Equal(other *Folder) bool {
	if f == nil || other == nil {
		return false
	}
	return f.ID != 0 && f.ID == other.ID
}

func (f *Folder) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, MaxTitleLength)),
	)
}
