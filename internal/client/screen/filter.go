package screen

import (
	"strings"

	"github.com/fundunity/cmsdash/internal/models"
)

// Filter keeps the records whose searchable fields contain query,
// ignoring case. An empty query returns items unchanged.
func Filter[T models.Record](items []T, query string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range it.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
