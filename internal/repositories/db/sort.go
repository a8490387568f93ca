package db

import (
	"docmanagement/internal/models"
	"fmt"
	"strings"
)

// OrderBy renders p.Sort as an ORDER BY clause using columns, a whitelist of
// property -> column. idColumn is always appended so pages are stable.
func OrderBy(p models.Pageable, columns map[string]string, idColumn string) (string, error) {
	parts := make([]string, 0, len(p.Sort)+1)
	hasID := false

	for _, s := range p.Sort {
		col, ok := columns[s.Property]
		if !ok {
			return "", fmt.Errorf("%w: %s", models.ErrInvalidSort, s.Property)
		}

		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}

		if col == idColumn {
			hasID = true
		}

		parts = append(parts, col+" "+dir)
	}

	if !hasID {
		parts = append(parts, idColumn+" ASC")
	}

	return " ORDER BY " + strings.Join(parts, ", "), nil
}
