package models

import "time"

type FolderRef struct {
	ID int64 `json:"id"`
}

type FolderPatch struct {
	ID          *int64              `json:"id"`
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Created     Optional[time.Time] `json:"created"`
}

func (p FolderPatch) Apply(f *Folder) {
	p.Title.ApplyValue(&f.Title)
	p.Description.ApplyTo(&f.Description)
	p.Created.ApplyTo(&f.Created)
}

type DocumentPatch struct {
	ID              *int64              `json:"id"`
	Title           Optional[string]    `json:"title"`
	Description     Optional[string]    `json:"description"`
	Data            Optional[[]byte]    `json:"data"`
	DataContentType Optional[string]    `json:"dataContentType"`
	Uploaded        Optional[time.Time] `json:"uploaded"`
	Folder          Optional[FolderRef] `json:"folder"`
}

func (p DocumentPatch) Apply(d *Document) {
	p.Title.ApplyValue(&d.Title)
	p.Description.ApplyTo(&d.Description)
	p.Data.ApplyValue(&d.Data)
	p.DataContentType.ApplyTo(&d.DataContentType)
	p.Uploaded.ApplyTo(&d.Uploaded)

	if p.Folder.Present {
		if p.Folder.Valid && p.Folder.Value.ID != 0 {
			id := p.Folder.Value.ID
			d.SetFolder(&id)
		} else {
			d.SetFolder(nil)
		}
	}
}
