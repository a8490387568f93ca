package dto

import (
	"docmanagement/internal/models"
	"time"
)

type DocumentRequest struct {
	ID              *int64            `json:"id"`
	Title           string            `json:"title"`
	Description     *string           `json:"description"`
	Data            []byte            `json:"data"`
	DataContentType *string           `json:"dataContentType"`
	Uploaded        *time.Time        `json:"uploaded"`
	Folder          *models.FolderRef `json:"folder"`
}

func (r DocumentRequest) ToModel() *models.Document {
	doc := &models.Document{
		Title:           r.Title,
		Description:     r.Description,
		Data:            r.Data,
		DataContentType: r.DataContentType,
		Uploaded:        r.Uploaded,
	}

	if r.ID != nil {
		doc.ID = *r.ID
	}

	if r.Folder != nil && r.Folder.ID != 0 {
		id := r.Folder.ID
		doc.FolderID = &id
	}

	return doc
}

type DocumentResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	Data            []byte     `json:"data"`
	DataContentType *string    `json:"dataContentType"`
	Uploaded        *time.Time `json:"uploaded"`

	// Folder is a FolderResponse, a models.FolderRef or nil.
	Folder any `json:"folder"`
}

// NewDocumentResponse emits the full folder when it was loaded and only its id otherwise.
func NewDocumentResponse(d *models.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Data:            d.Data,
		DataContentType: d.DataContentType,
		Uploaded:        d.Uploaded,
	}

	switch {
	case d.Folder != nil:
		resp.Folder = NewFolderResponse(d.Folder)
	case d.FolderID != nil:
		resp.Folder = models.FolderRef{ID: *d.FolderID}
	}

	return resp
}

func NewDocumentResponses(docs []*models.Document) []DocumentResponse {
	resp := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, NewDocumentResponse(d))
	}
	return resp
}
