package v1

import (
	"fmt"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the title, note and search filters for expense
// queries.
func stringFilters(db, query *gorm.DB, setFields []string, title, note, search string) *gorm.DB {
	if title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", title))
	} else if slices.Contains(setFields, "Title") {
		query = query.Where("title = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("title LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// filterCategories keeps the categories matching the pattern. The
// pattern supports "*" wildcards, a pattern without wildcards matches
// exactly.
func filterCategories[R any](resources []R, pattern string, category func(R) string) []R {
	if pattern == "" {
		return resources
	}

	filtered := make([]R, 0, len(resources))
	for _, resource := range resources {
		if glob.Glob(pattern, category(resource)) {
			filtered = append(filtered, resource)
		}
	}

	return filtered
}
