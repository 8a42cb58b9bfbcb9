package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formulario-clientes/catalog"
	"formulario-clientes/models"
)

func item(id int64, name, sku string, categories ...string) models.CatalogItem {
	return models.CatalogItem{ID: id, Name: name, SKU: sku, Categories: categories}
}

func TestOrderPinsPrioritySKUsFirst(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Zinnia", "00099"),
		item(2, "Second Pick", "00014"),
		item(3, "First Pick", "00015"),
		item(4, "Anthurium", "00001"),
	}
	priorities := []catalog.PriorityRule{{SKU: "00015"}, {SKU: "00014"}}

	ordered, unmatched := catalog.Order(items, priorities, nil)

	require.Empty(t, unmatched)
	require.Len(t, ordered, 4)
	// Pinned items lead in declared rule order, regardless of input order.
	assert.Equal(t, "First Pick", ordered[0].Name)
	assert.Equal(t, "Second Pick", ordered[1].Name)
	// Remainder is alphabetical.
	assert.Equal(t, []string{"Anthurium", "Zinnia"}, names(ordered[2:]))
}

func TestOrderPinsByNameWhenRuleHasNoSKU(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Anthurium", ""),
		item(2, "Ginger", ""),
	}
	priorities := []catalog.PriorityRule{{Name: "Ginger"}}

	ordered, unmatched := catalog.Order(items, priorities, nil)

	require.Empty(t, unmatched)
	assert.Equal(t, []string{"Ginger", "Anthurium"}, names(ordered))
}

func TestOrderSKURuleNeverFallsBackToName(t *testing.T) {
	// The rule names an existing product but its SKU matches nothing;
	// a SKU rule must not silently match by name.
	items := []models.CatalogItem{item(1, "Ginger", "00001")}
	priorities := []catalog.PriorityRule{{SKU: "99999", Name: "Ginger"}}

	ordered, unmatched := catalog.Order(items, priorities, nil)

	require.Len(t, unmatched, 1)
	assert.Equal(t, "99999", unmatched[0].SKU)
	assert.Equal(t, []string{"Ginger"}, names(ordered))
}

func TestOrderCategoryGroupingAlphabetical(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Rose", "", "Foliages"),
		item(2, "Anthurium", "", "Foliages"),
		item(3, "Ginger", "", "Tropical Flowers"),
	}

	ordered, unmatched := catalog.Order(items, nil, []string{"Foliages", "Tropical Flowers"})

	require.Empty(t, unmatched)
	assert.Equal(t, []string{"Anthurium", "Rose", "Ginger"}, names(ordered))
}

func TestOrderFirstCategoryWins(t *testing.T) {
	// An item in several listed categories is claimed once, by the first
	// category processed, and never duplicated.
	items := []models.CatalogItem{
		item(1, "Both", "", "Foliages", "Tropical Flowers"),
		item(2, "Ginger", "", "Tropical Flowers"),
	}

	ordered, unmatched := catalog.Order(items, nil, []string{"Foliages", "Tropical Flowers"})

	require.Empty(t, unmatched)
	assert.Equal(t, []string{"Both", "Ginger"}, names(ordered))
}

func TestOrderUnmatchedRuleIsSkipped(t *testing.T) {
	items := []models.CatalogItem{item(1, "Rose", "00001")}
	priorities := []catalog.PriorityRule{{SKU: "00015"}, {SKU: "00001"}}

	ordered, unmatched := catalog.Order(items, priorities, nil)

	require.Len(t, unmatched, 1)
	assert.Equal(t, "00015", unmatched[0].SKU)
	assert.Equal(t, []string{"Rose"}, names(ordered))
}

func TestOrderSameRuleConsumesOneItem(t *testing.T) {
	// Two items share a SKU; one rule occurrence consumes exactly one of
	// them (the first by input order), the other stays in the pool.
	items := []models.CatalogItem{
		item(1, "Twin A", "00015"),
		item(2, "Twin B", "00015"),
	}
	priorities := []catalog.PriorityRule{{SKU: "00015"}}

	ordered, unmatched := catalog.Order(items, priorities, nil)

	require.Empty(t, unmatched)
	assert.Equal(t, []string{"Twin A", "Twin B"}, names(ordered))
}

func TestOrderEveryItemAppearsExactlyOnce(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Rose", "00001", "Foliages"),
		item(2, "Anthurium", "00002", "Foliages"),
		item(3, "Ginger", "00003", "Tropical Flowers"),
		item(4, "Pinned", "00015"),
		item(5, "Zinnia", "00005"),
		item(6, "Orchid", "00006", "Orchids"),
	}
	priorities := []catalog.PriorityRule{{SKU: "00015"}, {SKU: "missing"}}
	categoryOrder := []string{"Foliages", "Tropical Flowers"}

	ordered, _ := catalog.Order(items, priorities, categoryOrder)

	require.Len(t, ordered, len(items))
	seen := make(map[int64]int)
	for _, it := range ordered {
		seen[it.ID]++
	}
	for _, it := range items {
		assert.Equal(t, 1, seen[it.ID], "item %d should appear exactly once", it.ID)
	}
}

func TestOrderIsIdempotent(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Rose", "00001", "Foliages"),
		item(2, "Ginger", "00003", "Tropical Flowers"),
		item(3, "Pinned", "00015"),
		item(4, "Anthurium", "00002", "Foliages"),
		item(5, "Zinnia", "00005"),
	}
	priorities := []catalog.PriorityRule{{SKU: "00015"}}
	categoryOrder := []string{"Foliages", "Tropical Flowers"}

	first, _ := catalog.Order(items, priorities, categoryOrder)
	second, _ := catalog.Order(items, priorities, categoryOrder)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	items := []models.CatalogItem{
		item(1, "Zinnia", "00005"),
		item(2, "Pinned", "00015"),
		item(3, "Anthurium", "00002", "Foliages"),
	}
	snapshot := make([]models.CatalogItem, len(items))
	copy(snapshot, items)

	catalog.Order(items, []catalog.PriorityRule{{SKU: "00015"}}, []string{"Foliages"})

	assert.Empty(t, cmp.Diff(snapshot, items))
}

func TestOrderEmptyInput(t *testing.T) {
	ordered, unmatched := catalog.Order(nil, []catalog.PriorityRule{{SKU: "00015"}}, []string{"Foliages"})
	assert.Empty(t, ordered)
	assert.Len(t, unmatched, 1)
}
