package service

import (
	"context"
	"log"

	"formulario-clientes/catalog"
)

// ProductsService runs the catalog pipeline for outgoing notifications:
// fetch, normalize, order, render
type ProductsService struct {
	storefront StorefrontServiceInterface
	rules      catalog.Rules
	storeURL   string // public store base URL for product links
}

// NewProductsService creates a new ProductsService
func NewProductsService(storefront StorefrontServiceInterface, rules catalog.Rules, storeURL string) *ProductsService {
	return &ProductsService{
		storefront: storefront,
		rules:      rules,
		storeURL:   storeURL,
	}
}

// Ensure ProductsService implements ProductsServiceInterface
var _ ProductsServiceInterface = (*ProductsService)(nil)

// BuildProductsFragment fetches the live catalog and renders the ordered
// product table. A storefront failure is logged and degrades to the
// "no products" fragment; it must never block the thank-you email.
func (s *ProductsService) BuildProductsFragment(ctx context.Context) string {
	items, err := s.storefront.FetchCatalog(ctx)
	if err != nil {
		log.Printf("⚠️  BuildProductsFragment: catalog fetch failed, sending email without products: %v", err)
		return catalog.Render(nil, s.storeURL)
	}

	fragment, unmatched := catalog.BuildFragment(items, s.rules, s.storeURL)
	for _, rule := range unmatched {
		log.Printf("⚠️  BuildProductsFragment: priority rule matched no product (sku=%q, name=%q)", rule.SKU, rule.Name)
	}

	log.Printf("✓ BuildProductsFragment: Rendered products fragment from %d catalog items", len(items))
	return fragment
}
