package db

import (
	"docmanagement/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBy(t *testing.T) {
	t.Parallel()

	columns := map[string]string{"id": "f.id", "title": "f.title"}

	tests := []struct {
		name     string
		sort     []models.SortOrder
		expected string
	}{
		{"unsorted", nil, " ORDER BY f.id ASC"},
		{"by id desc", []models.SortOrder{{Property: "id", Desc: true}}, " ORDER BY f.id DESC"},
		{"by title", []models.SortOrder{{Property: "title"}}, " ORDER BY f.title ASC, f.id ASC"},
		{
			"title desc then id",
			[]models.SortOrder{{Property: "title", Desc: true}, {Property: "id"}},
			" ORDER BY f.title DESC, f.id ASC",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clause, err := OrderBy(models.Pageable{Sort: tt.sort}, columns, "f.id")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, clause)
		})
	}
}

func TestOrderBy_UnknownProperty(t *testing.T) {
	t.Parallel()

	_, err := OrderBy(models.Pageable{Sort: []models.SortOrder{{Property: "title; DROP TABLE folders"}}}, map[string]string{"id": "f.id"}, "f.id")
	assert.ErrorIs(t, err, models.ErrInvalidSort)
}
