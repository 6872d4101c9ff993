package adapter

import (
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Match returns the items whose name contains query, ignoring case and
// surrounding whitespace in query. Order is preserved. An empty query
// matches everything. The result never aliases items.
func Match(items []model.Item, query string) []model.Item {
	out := make([]model.Item, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	pattern := strings.ToLower(strings.TrimSpace(query))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), pattern) {
			out = append(out, it)
		}
	}
	return out
}
