package models

import "encoding/json"

// CatalogItem represents a single product as returned by the storefront API
type CatalogItem struct {
	ID           int64        `json:"id"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Categories   []string     `json:"categories"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	MediaImages  []MediaImage `json:"mediaImages"`
}

// MediaImage is one entry of a product's image gallery
type MediaImage struct {
	URL string `json:"url"`
}

// HasCategory reports whether the item belongs to the given category
func (i CatalogItem) HasCategory(name string) bool {
	for _, c := range i.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ImageURL returns the best available image URL for the item:
// the thumbnail if present, otherwise the first gallery image.
// Returns "" when the item has no resolvable image.
func (i CatalogItem) ImageURL() string {
	if i.ThumbnailURL != "" {
		return i.ThumbnailURL
	}
	if len(i.MediaImages) > 0 {
		return i.MediaImages[0].URL
	}
	return ""
}

// CatalogPage represents one page of the storefront products endpoint
type CatalogPage struct {
	Items      []CatalogItem `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// ParseCatalogPage unmarshals a products payload from wrapped or bare-array shapes.
// Some storefront deployments return {"items": [...]} with paging metadata,
// older ones return the array directly.
func ParseCatalogPage(data []byte) (*CatalogPage, error) {
	var page CatalogPage
	if err := json.Unmarshal(data, &page); err == nil && page.Items != nil {
		return &page, nil
	}

	var items []CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return &CatalogPage{Items: items}, nil
}
