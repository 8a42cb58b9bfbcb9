package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formulario-clientes/catalog"
	"formulario-clientes/models"
)

const testStoreURL = "https://store.example.com"

func TestRenderEmptyCatalog(t *testing.T) {
	got := catalog.Render(nil, testStoreURL)
	assert.Equal(t, `<p>No products are available at this time.</p>`, got)
	assert.NotContains(t, got, "<table")
}

func TestRenderTableStructure(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 42, Name: "Red Rose", Slug: "red-rose", ThumbnailURL: "https://cdn.example.com/rose.jpg"},
		{ID: 7, Name: "Ginger", Slug: "ginger", MediaImages: []models.MediaImage{{URL: "https://cdn.example.com/ginger.jpg"}}},
	}

	got := catalog.Render(items, testStoreURL)

	assert.Contains(t, got, "<th>Image</th><th>Name</th><th>View Product</th>")
	assert.Contains(t, got, `<img src="https://cdn.example.com/rose.jpg"`)
	// No thumbnail: first gallery image is used.
	assert.Contains(t, got, `<img src="https://cdn.example.com/ginger.jpg"`)
	assert.Contains(t, got, `href="https://store.example.com/red-rose-p42"`)
	assert.Contains(t, got, `href="https://store.example.com/ginger-p7"`)
	assert.Contains(t, got, `target="_blank"`)

	// Rows come out in input order.
	require.Less(t, strings.Index(got, "Red Rose"), strings.Index(got, "Ginger"))
}

func TestRenderEscapesItemNames(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Name: "Rose <script>alert(1)</script>", Slug: "rose"},
	}

	got := catalog.Render(items, testStoreURL)

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRenderImageFallbackToNA(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Name: "No Image", Slug: "no-image"},
	}

	got := catalog.Render(items, testStoreURL)

	assert.Contains(t, got, "<td>N/A</td>")
	assert.NotContains(t, got, "<img")
}

func TestProductURL(t *testing.T) {
	got := catalog.ProductURL(testStoreURL+"/", models.CatalogItem{ID: 42, Slug: "red-rose"})
	assert.Equal(t, "https://store.example.com/red-rose-p42", got)

	// Slug is path-escaped so hostile slugs cannot break out of the path.
	got = catalog.ProductURL(testStoreURL, models.CatalogItem{ID: 1, Slug: "a/b c"})
	assert.Equal(t, "https://store.example.com/a%2Fb%20c-p1", got)
}

func TestBuildFragmentFullPipeline(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Name: "White", Slug: "white"},
		{ID: 2, Name: "Blue Hydrangea", Slug: "blue-hydrangea", Categories: []string{"Hydrangeas"}},
		{ID: 3, Name: "Rose", Slug: "rose", Categories: []string{"Foliages"}},
		{ID: 4, Name: "Anthurium", Slug: "anthurium", Categories: []string{"Foliages"}},
		{ID: 5, Name: "Ginger", Slug: "ginger", Categories: []string{"Tropical Flowers"}},
		{ID: 6, Name: "Pinned", Slug: "pinned", SKU: "00015"},
	}

	got, unmatched := catalog.BuildFragment(items, catalog.DefaultRules(), testStoreURL)

	// Rule 00014 has no product in this snapshot.
	require.Len(t, unmatched, 1)
	assert.Equal(t, "00014", unmatched[0].SKU)

	// Exclusions applied before ordering.
	assert.NotContains(t, got, "White")
	assert.NotContains(t, got, "Hydrangea")

	// Pinned first, then Foliages alphabetical, then Tropical Flowers.
	idx := func(s string) int { return strings.Index(got, ">"+s+"<") }
	require.GreaterOrEqual(t, idx("Pinned"), 0)
	assert.Less(t, idx("Pinned"), idx("Anthurium"))
	assert.Less(t, idx("Anthurium"), idx("Rose"))
	assert.Less(t, idx("Rose"), idx("Ginger"))
}

func TestBuildFragmentEverythingFilteredOut(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Name: "White", Slug: "white"},
	}

	got, _ := catalog.BuildFragment(items, catalog.DefaultRules(), testStoreURL)
	assert.Equal(t, catalog.NoProductsFragment, got)
}
