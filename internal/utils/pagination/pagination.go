package utils

import (
	"docmanagement/internal/models"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderLink       = "Link"
)

// ParseInt returns def for empty, non-numeric or negative input.
func ParseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}

	return n
}

// ParsePageable reads page, size and repeated sort=prop[,asc|desc] parameters.
func ParsePageable(q url.Values, defaultSize, maxSize int) (models.Pageable, error) {
	size := ParseInt(q.Get("size"), defaultSize)
	if size == 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}

	// Page * Size must not overflow the offset.
	page := ParseInt(q.Get("page"), 0)
	if size > 0 && page > math.MaxInt32/size {
		page = math.MaxInt32 / size
	}

	pageable := models.Pageable{
		Page: page,
		Size: size,
	}

	for _, raw := range q["sort"] {
		order, ok, err := parseSort(raw)
		if err != nil {
			return models.Pageable{}, err
		}
		if ok {
			pageable.Sort = append(pageable.Sort, order)
		}
	}

	return pageable, nil
}

func parseSort(raw string) (models.SortOrder, bool, error) {
	parts := strings.Split(raw, ",")

	property := strings.TrimSpace(parts[0])
	if property == "" {
		return models.SortOrder{}, false, nil
	}

	order := models.SortOrder{Property: property}

	if len(parts) > 2 {
		return models.SortOrder{}, false, fmt.Errorf("%w: %s", models.ErrInvalidSort, raw)
	}

	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "", "asc":
		case "desc":
			order.Desc = true
		default:
			return models.SortOrder{}, false, fmt.Errorf("%w: %s", models.ErrInvalidSort, raw)
		}
	}

	return order, true, nil
}

// SetPaginationHeaders writes X-Total-Count and a Link header with next, prev, last and first relations.
// Links are absolute URLs built from the request.
func SetPaginationHeaders[T any](h http.Header, r *http.Request, page models.Page[T]) {
	u := requestURL(r)

	h.Set(HeaderTotalCount, strconv.FormatInt(page.Total, 10))

	number := page.Pageable.Page
	size := page.Pageable.Size

	links := make([]string, 0, 4)

	if page.HasNext() {
		links = append(links, link(u, number+1, size, "next"))
	}
	if page.HasPrevious() {
		links = append(links, link(u, number-1, size, "prev"))
	}

	links = append(links, link(u, page.TotalPages()-1, size, "last"))
	links = append(links, link(u, 0, size, "first"))

	h.Set(HeaderLink, strings.Join(links, ","))
}

func requestURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}

	return &url.URL{Scheme: scheme, Host: host, Path: r.URL.Path, RawQuery: r.URL.RawQuery}
}

func link(u *url.URL, page, size int, rel string) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	target := url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path, RawQuery: q.Encode()}

	return fmt.Sprintf("<%s>; rel=\"%s\"", target.String(), rel)
}
