package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolder_Equal(t *testing.T) {
	t.Parallel()

	a := &Folder{ID: 1, Title: "a"}
	b := &Folder{ID: 1, Title: "b"}
	c := &Folder{ID: 2, Title: "a"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, (&Folder{Title: "a"}).Equal(&Folder{Title: "a"}))
	assert.False(t, a.Equal(nil))
}

func TestDocument_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Document{ID: 3}).Equal(&Document{ID: 3, Title: "other"}))
	assert.False(t, (&Document{ID: 3}).Equal(&Document{ID: 4}))
	assert.False(t, (&Document{}).Equal(&Document{}))
}

func TestFolder_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Folder{Title: "AAAAAAAAAA"}).Validate())

	err := (&Folder{}).Validate()
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "title")

	assert.Error(t, (&Folder{Title: strings.Repeat("x", MaxTitleLength+1)}).Validate())
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	contentType := "image/png"
	assert.NoError(t, (&Document{Title: "scan", DataContentType: &contentType}).Validate())
	assert.Error(t, (&Document{}).Validate())
}

func TestDocument_SetFolder(t *testing.T) {
	t.Parallel()

	id := int64(4)
	other := int64(5)
	doc := &Document{FolderID: &id, Folder: &Folder{ID: 4}}

	doc.SetFolder(&id)
	assert.NotNil(t, doc.Folder)

	doc.SetFolder(&other)
	assert.Nil(t, doc.Folder)
	assert.Equal(t, int64(5), *doc.FolderID)

	doc.SetFolder(nil)
	assert.Nil(t, doc.FolderID)
}

func TestOptional_Unmarshal(t *testing.T) {
	t.Parallel()

	var patch FolderPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"description":null,"title":"new"}`), &patch))

	assert.Equal(t, int64(1), *patch.ID)
	assert.Equal(t, Some("new"), patch.Title)
	assert.Equal(t, Null[string](), patch.Description)
	assert.False(t, patch.Created.Present)
}

func TestOptional_UnmarshalTypeError(t *testing.T) {
	t.Parallel()

	var patch FolderPatch
	assert.Error(t, json.Unmarshal([]byte(`{"title":42}`), &patch))
}

func TestFolderPatch_Apply(t *testing.T) {
	t.Parallel()

	description := "AAAAAAAAAA"
	epoch := time.Unix(0, 0).UTC()
	now := time.Now().UTC()

	folder := &Folder{ID: 1, Title: "AAAAAAAAAA", Description: &description, Created: &epoch}

	FolderPatch{Created: Some(now)}.Apply(folder)

	assert.Equal(t, "AAAAAAAAAA", folder.Title)
	assert.Equal(t, "AAAAAAAAAA", *folder.Description)
	assert.Equal(t, now, *folder.Created)

	FolderPatch{Description: Null[string]()}.Apply(folder)
	assert.Nil(t, folder.Description)

	FolderPatch{Title: Null[string]()}.Apply(folder)
	assert.Equal(t, "", folder.Title)
	assert.Error(t, folder.Validate())
}

func TestDocumentPatch_Apply(t *testing.T) {
	t.Parallel()

	folderID := int64(4)
	doc := &Document{ID: 2, Title: "scan", Data: []byte("x"), FolderID: &folderID, Folder: &Folder{ID: 4}}

	var patch DocumentPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"dataContentType":"image/png","folder":{"id":9}}`), &patch))
	patch.Apply(doc)

	assert.Equal(t, "scan", doc.Title)
	assert.Equal(t, []byte("x"), doc.Data)
	assert.Equal(t, "image/png", *doc.DataContentType)
	assert.Equal(t, int64(9), *doc.FolderID)
	assert.Nil(t, doc.Folder)

	patch = DocumentPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"folder":null,"data":null}`), &patch))
	patch.Apply(doc)

	assert.Nil(t, doc.FolderID)
	assert.Nil(t, doc.Data)
}

func TestPage_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    int
		size    int
		total   int64
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"empty", 0, 20, 0, 1, false, false},
		{"single page", 0, 20, 5, 1, false, false},
		{"first of three", 0, 2, 5, 3, true, false},
		{"middle", 1, 2, 5, 3, true, true},
		{"last", 2, 2, 5, 3, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Page[int]{Total: tt.total, Pageable: Pageable{Page: tt.page, Size: tt.size}}
			assert.Equal(t, tt.pages, p.TotalPages())
			assert.Equal(t, tt.hasNext, p.HasNext())
			assert.Equal(t, tt.hasPrev, p.HasPrevious())
		})
	}
}
