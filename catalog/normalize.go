package catalog

import (
	"strings"

	"formulario-clientes/models"
)

// Normalize applies the exclusion filters to an already-fetched catalog
// snapshot. Items whose category set intersects the excluded categories are
// dropped, then items whose trimmed name exactly matches an excluded name.
// An item with no categories always passes the category filter; an item
// with no name always passes the name filter (it cannot be matched, so it
// cannot be safely dropped).
//
// Pure: the input slice is never mutated and no I/O happens here. Output
// order carries no meaning; Order is the only place sequence is decided.
func Normalize(items []models.CatalogItem, ex Exclusions) []models.CatalogItem {
	excludedCategories := make(map[string]bool, len(ex.Categories))
	for _, c := range ex.Categories {
		excludedCategories[c] = true
	}
	excludedNames := make(map[string]bool, len(ex.Names))
	for _, n := range ex.Names {
		excludedNames[n] = true
	}

	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if hasExcludedCategory(item, excludedCategories) {
			continue
		}
		if name := strings.TrimSpace(item.Name); name != "" && excludedNames[name] {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasExcludedCategory(item models.CatalogItem, excluded map[string]bool) bool {
	for _, c := range item.Categories {
		if excluded[c] {
			return true
		}
	}
	return false
}
