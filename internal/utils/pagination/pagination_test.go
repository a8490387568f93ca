package utils

import (
	"docmanagement/internal/models"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"valid number", "10", 10},
		{"zero", "0", 0},
		{"negative number", "-5", 7},
		{"not a number", "abc", 7},
		{"empty string", "", 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := ParseInt(tt.input, 7)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParsePageable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected models.Pageable
	}{
		{"defaults", "", models.Pageable{Page: 0, Size: 20}},
		{"explicit", "page=3&size=5", models.Pageable{Page: 3, Size: 5}},
		{"zero size", "size=0", models.Pageable{Size: 20}},
		{"size capped", "size=5000", models.Pageable{Size: 2000}},
		{"garbage", "page=x&size=-1", models.Pageable{Size: 20}},
		{"huge page clamped", "page=9223372036854775807&size=20", models.Pageable{Page: math.MaxInt32 / 20, Size: 20}},
		{
			"sorts",
			"sort=title,desc&sort=created&sort=id,ASC",
			models.Pageable{Size: 20, Sort: []models.SortOrder{
				{Property: "title", Desc: true},
				{Property: "created"},
				{Property: "id"},
			}},
		},
		{"empty sort skipped", "sort=", models.Pageable{Size: 20}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			result, err := ParsePageable(q, 20, 2000)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParsePageable_OffsetStaysPositive(t *testing.T) {
	t.Parallel()

	for _, size := range []string{"1", "20", "2000"} {
		q := url.Values{"page": {"9223372036854775807"}, "size": {size}}

		pageable, err := ParsePageable(q, 20, 2000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pageable.Offset(), 0, size)
		assert.LessOrEqual(t, pageable.Offset(), math.MaxInt32, size)
	}
}

func TestParsePageable_InvalidDirection(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"title,sideways", "title,asc,desc"} {
		_, err := ParsePageable(url.Values{"sort": {raw}}, 20, 2000)
		assert.ErrorIs(t, err, models.ErrInvalidSort, raw)
	}
}

func TestSetPaginationHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://docs.local/api/documents?eagerload=false&page=1&size=2", nil)

	page := models.Page[int]{
		Content:  []int{3, 4},
		Total:    5,
		Pageable: models.Pageable{Page: 1, Size: 2},
	}

	h := http.Header{}
	SetPaginationHeaders(h, r, page)

	assert.Equal(t, "5", h.Get(HeaderTotalCount))
	assert.Equal(t,
		`<http://docs.local/api/documents?eagerload=false&page=2&size=2>; rel="next",`+
			`<http://docs.local/api/documents?eagerload=false&page=0&size=2>; rel="prev",`+
			`<http://docs.local/api/documents?eagerload=false&page=2&size=2>; rel="last",`+
			`<http://docs.local/api/documents?eagerload=false&page=0&size=2>; rel="first"`,
		h.Get(HeaderLink))
}

func TestSetPaginationHeaders_Empty(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://docs.local/api/folders", nil)

	h := http.Header{}
	SetPaginationHeaders(h, r, models.Page[int]{Pageable: models.Pageable{Size: 20}})

	assert.Equal(t, "0", h.Get(HeaderTotalCount))
	assert.Equal(t,
		`<http://docs.local/api/folders?page=0&size=20>; rel="last",<http://docs.local/api/folders?page=0&size=20>; rel="first"`,
		h.Get(HeaderLink))
}

func TestSetPaginationHeaders_ForwardedOrigin(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/folders?page=0&size=20", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Host", "docs.example.org")

	h := http.Header{}
	SetPaginationHeaders(h, r, models.Page[int]{Pageable: models.Pageable{Size: 20}})

	assert.Contains(t, h.Get(HeaderLink), `<https://docs.example.org/api/folders?page=0&size=20>; rel="first"`)
}
