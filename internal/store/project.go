package store

import (
	"strings"

	"github.com/sandeepkv93/shoplist/internal/model"
)

// Project returns the visible subsequence of items. Checked items are dropped
// when hideCompleted is set; a non-empty searchTerm keeps only names that
// contain it (case-sensitive). Order is preserved and items is not modified.
func Project(items []model.Item, hideCompleted bool, searchTerm *string) []model.Item {
	term := ""
	if searchTerm != nil {
		term = *searchTerm
	}
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if hideCompleted && item.Checked {
			continue
		}
		if term != "" && !strings.Contains(item.Name, term) {
			continue
		}
		out = append(out, item)
	}
	return out
}
