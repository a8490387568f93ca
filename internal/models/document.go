package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Document struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	Data            []byte     `json:"data"`
	DataContentType *string    `json:"dataContentType"`
	Uploaded        *time.Time `json:"uploaded"`
	FolderID        *int64     `json:"-"`

	// Folder is set only when the relation was loaded.
	Folder *Folder `json:"-"`
}

func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return false
	}
	return d.ID != 0 && d.ID == other.ID
}

func (d *Document) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&d.DataContentType, validation.Length(0, MaxTitleLength)),
	)
}

// SetFolder points the document at folderID, dropping a loaded folder that no longer matches.
func (d *Document) SetFolder(folderID *int64) {
	d.FolderID = folderID
	if d.Folder != nil && (folderID == nil || d.Folder.ID != *folderID) {
		d.Folder = nil
	}
}
