package dto

import (
	"docmanagement/internal/models"
	"time"
)

type FolderRequest struct {
	ID          *int64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Created     *time.Time `json:"created"`
}

func (r FolderRequest) ToModel() *models.Folder {
	folder := &models.Folder{
		Title:       r.Title,
		Description: r.Description,
		Created:     r.Created,
	}

	if r.ID != nil {
		folder.ID = *r.ID
	}

	return folder
}

type FolderResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Created     *time.Time `json:"created"`
}

func NewFolderResponse(f *models.Folder) FolderResponse {
	return FolderResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Created:     f.Created,
	}
}

func NewFolderResponses(folders []*models.Folder) []FolderResponse {
	resp := make([]FolderResponse, 0, len(folders))
	for _, f := range folders {
		resp = append(resp, NewFolderResponse(f))
	}
	return resp
}
