package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"formulario-clientes/models"
)

// Order produces the deterministic catalog sequence:
//
//  1. pinned items, one per matched priority rule, in rule order;
//  2. one group per entry of categoryOrder, in declared order, each sorted
//     alphabetically by name; an item in several listed categories is
//     claimed by the first one processed and never considered again;
//  3. everything left, sorted alphabetically by name.
//
// Every input item appears exactly once in the output. Rules that match no
// item are returned in unmatched for the caller to log; they never abort
// the pipeline. The input slice is not mutated.
func Order(items []models.CatalogItem, priorities []PriorityRule, categoryOrder []string) (ordered []models.CatalogItem, unmatched []PriorityRule) {
	remaining := make([]models.CatalogItem, len(items))
	copy(remaining, items)

	ordered = make([]models.CatalogItem, 0, len(items))

	// Pinning pass: first match by input order within the remaining pool,
	// one consumption per rule occurrence.
	for _, rule := range priorities {
		idx := matchRule(remaining, rule)
		if idx < 0 {
			unmatched = append(unmatched, rule)
			continue
		}
		ordered = append(ordered, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	// Locale-aware comparisons. A collator is not safe for concurrent use,
	// so each Order call builds its own.
	col := collate.New(language.English)
	sortByName := func(group []models.CatalogItem) {
		sort.SliceStable(group, func(i, j int) bool {
			return col.CompareString(group[i].Name, group[j].Name) < 0
		})
	}

	// Category groups in declared order, first-category-wins.
	for _, category := range categoryOrder {
		var group, rest []models.CatalogItem
		for _, item := range remaining {
			if item.HasCategory(category) {
				group = append(group, item)
			} else {
				rest = append(rest, item)
			}
		}
		sortByName(group)
		ordered = append(ordered, group...)
		remaining = rest
	}

	// Alphabetical remainder.
	sortByName(remaining)
	ordered = append(ordered, remaining...)

	return ordered, unmatched
}

// matchRule returns the index of the first item in pool matched by rule,
// or -1. A rule with a SKU matches by SKU only; the name matcher applies
// only when the rule carries no SKU.
func matchRule(pool []models.CatalogItem, rule PriorityRule) int {
	for i, item := range pool {
		if rule.SKU != "" {
			if item.SKU == rule.SKU {
				return i
			}
		} else if rule.Name != "" && item.Name == rule.Name {
			return i
		}
	}
	return -1
}
